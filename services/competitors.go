package services

// DefaultCompetitorEmissionFactor is the particleboard factor used for
// competitor products, in kg CO2e per kg.
const DefaultCompetitorEmissionFactor = 0.8

// CompetitorProfile is one configured row of the benchmark: a competitor
// and the assumptions used to estimate its footprint.
type CompetitorProfile struct {
	Name           string
	AvgPriceHKD    float64
	EmissionFactor float64
}

// CompetitorEntry is a benchmark row computed for a specific order.
type CompetitorEntry struct {
	Name               string
	AvgPriceHKD        float64
	FootprintPerUnitKg float64
}

// DefaultCompetitors is the placeholder benchmark used when no competitor
// data has been configured. Prices are static; nothing is scraped.
var DefaultCompetitors = []CompetitorProfile{
	{Name: "IKEA", AvgPriceHKD: 499, EmissionFactor: DefaultCompetitorEmissionFactor},
	{Name: "Ulferts", AvgPriceHKD: 3500, EmissionFactor: DefaultCompetitorEmissionFactor},
	{Name: "OVO", AvgPriceHKD: 2500, EmissionFactor: DefaultCompetitorEmissionFactor},
}

// BuildCompetitorTable estimates each competitor's footprint for a product
// weighing unitWeight kg. Order of profiles is preserved.
func BuildCompetitorTable(profiles []CompetitorProfile, unitWeight float64) []CompetitorEntry {
	entries := make([]CompetitorEntry, 0, len(profiles))
	for _, p := range profiles {
		ef := p.EmissionFactor
		if ef == 0 {
			ef = DefaultCompetitorEmissionFactor
		}
		entries = append(entries, CompetitorEntry{
			Name:               p.Name,
			AvgPriceHKD:        p.AvgPriceHKD,
			FootprintPerUnitKg: unitWeight * ef,
		})
	}
	return entries
}
