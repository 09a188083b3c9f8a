package services

// Factors are the constants of the cradle-to-gate formula for rice husk
// fiberboard.
type Factors struct {
	Density        float64 // kg/m3
	EmissionFactor float64 // kg CO2e per kg of material
	EnergyFactor   float64 // kg CO2e per kg, 0.1 kWh/kg at 0.5 kg CO2e/kWh
}

// DefaultFactors is the only factor set the report is published with.
var DefaultFactors = Factors{
	Density:        550,
	EmissionFactor: 0.55,
	EnergyFactor:   0.05,
}

// PerKg is the combined footprint of one kilogram of material.
func (f Factors) PerKg() float64 {
	return f.EmissionFactor + f.EnergyFactor
}

const cubicCmPerCubicM = 1_000_000

// FootprintEstimate holds the figures derived from one OrderRequest.
type FootprintEstimate struct {
	VolumeM3         float64
	UnitWeightKg     float64
	UnitFootprintKg  float64
	TotalWeightKg    float64
	TotalFootprintKg float64
}

// Estimate computes the footprint of an order with DefaultFactors.
// Inputs are expected to be validated already.
func Estimate(order OrderRequest) FootprintEstimate {
	return EstimateWith(DefaultFactors, order)
}

// EstimateWith computes the footprint of an order with the given factors.
func EstimateWith(f Factors, order OrderRequest) FootprintEstimate {
	volume := order.Length * order.Width * order.Height / cubicCmPerCubicM
	weight := volume * f.Density
	unitCF := weight * f.PerKg()
	qty := float64(order.Quantity)

	return FootprintEstimate{
		VolumeM3:         volume,
		UnitWeightKg:     weight,
		UnitFootprintKg:  unitCF,
		TotalWeightKg:    weight * qty,
		TotalFootprintKg: unitCF * qty,
	}
}
