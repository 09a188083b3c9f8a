package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SectionKey identifies one of the fixed report sections.
type SectionKey string

const (
	SectionHeader                 SectionKey = "header"
	SectionExecutiveSummary       SectionKey = "executive_summary"
	SectionCompanyOverview        SectionKey = "company_overview"
	SectionEnvironmentalMethod    SectionKey = "environmental_methodology"
	SectionMaterialUsage          SectionKey = "material_usage"
	SectionCarbonFootprint        SectionKey = "carbon_footprint_analysis"
	SectionCompetitorBenchmarking SectionKey = "competitor_benchmarking"
	SectionRecommendations        SectionKey = "recommendations"
	SectionAppendices             SectionKey = "appendices"
)

// SectionOrder is the order every report is laid out in.
var SectionOrder = []SectionKey{
	SectionHeader,
	SectionExecutiveSummary,
	SectionCompanyOverview,
	SectionEnvironmentalMethod,
	SectionMaterialUsage,
	SectionCarbonFootprint,
	SectionCompetitorBenchmarking,
	SectionRecommendations,
	SectionAppendices,
}

// Competitor table column headings.
var CompetitorColumns = []string{"Competitor", "Avg Price (HKD)", "Est. CF per Unit (kg CO2e)"}

// Profile is the company information woven into the report prose.
type Profile struct {
	CompanyName string
	Material    string
}

// DefaultProfile is RiceFort's published profile.
var DefaultProfile = Profile{
	CompanyName: "RiceFort Limited",
	Material:    "Rice Husk Fiberboards",
}

// Section is a titled block of report text. The header section's heading
// is the report title.
type Section struct {
	Key        SectionKey
	Heading    string
	Paragraphs []string
}

// Table is a header row plus string cells, ready for any renderer.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Report is the renderer-independent content of one carbon footprint
// report. ID and GeneratedAt are metadata and do not appear in Sections.
type Report struct {
	ID            string
	GeneratedAt   time.Time
	Company       string
	FurnitureType FurnitureType
	Title         string
	Sections      []Section
	Competitors   Table
	Estimate      FootprintEstimate
}

// Section returns the section with the given key.
func (r Report) Section(key SectionKey) (Section, bool) {
	for _, s := range r.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

const companyOverview = "%[1]s is Hong Kong's first bio-based materials research and development company focused on rice husk, " +
	"dedicated to addressing the challenges of agricultural waste management and reducing carbon emissions. %[1]s aims to " +
	"upgrade rice husks into valuable materials, primarily rice husk fiberboards, through structured processes focused on sustainability " +
	"and resource utilization. By transforming rice husks into high-value products, %[1]s not only tackles the issue of agricultural " +
	"waste management but also promotes a circular economy. This ensures materials are reused and recycled, protecting our forests and " +
	"fostering environmental sustainability."

// AssembleReport builds the nine report sections and the competitor table.
// The result depends only on its arguments; callers stamp ID and
// GeneratedAt afterwards (see NewReport).
func AssembleReport(order OrderRequest, est FootprintEstimate, competitors []CompetitorEntry, profile Profile) Report {
	title := fmt.Sprintf("%s Carbon Footprint Report", profile.CompanyName)
	totalWeight := FormatFigure(est.TotalWeightKg)
	totalCF := FormatFigure(est.TotalFootprintKg)

	sections := []Section{
		{
			Key:     SectionHeader,
			Heading: title,
			Paragraphs: []string{
				fmt.Sprintf("Prepared for: %s", order.ClientName),
				fmt.Sprintf("Focus: Environmental Sustainability for %s", order.FurnitureType),
			},
		},
		{
			Key:     SectionExecutiveSummary,
			Heading: "Executive Summary",
			Paragraphs: []string{fmt.Sprintf(
				"This report provides a comprehensive overview of the sustainability practices associated with the production of your furniture: "+
					"%d units of %s with dimensions %s cm. Total material: %s kg. Total carbon footprint: %s kg CO2e. "+
					"We are committed to ensuring that our products not only meet the needs of yours but also contribute positively to the environment and society.",
				order.Quantity, order.FurnitureType, order.Dimensions(), totalWeight, totalCF,
			)},
		},
		{
			Key:        SectionCompanyOverview,
			Heading:    "Company Overview",
			Paragraphs: []string{fmt.Sprintf(companyOverview, profile.CompanyName)},
		},
		{
			Key:     SectionEnvironmentalMethod,
			Heading: "Environmental Methodology",
			Paragraphs: []string{fmt.Sprintf(
				"Based on ISO 14067 cradle-to-gate. Emission factor: %.2f kg CO2e/kg + energy emissions (%.2f kg CO2e/kg).",
				DefaultFactors.EmissionFactor, DefaultFactors.EnergyFactor,
			)},
		},
		{
			Key:     SectionMaterialUsage,
			Heading: "Material Usage and Sourcing",
			Paragraphs: []string{fmt.Sprintf(
				"Material: %s, Total: %s kg from local rice husks (95%% sourced from HK/Guangdong).",
				profile.Material, totalWeight,
			)},
		},
		{
			Key:     SectionCarbonFootprint,
			Heading: "Carbon Footprint Analysis",
			Paragraphs: []string{fmt.Sprintf(
				"CF per unit: %s kg CO2e, Total: %s kg CO2e for %d units.",
				FormatFigure(est.UnitFootprintKg), totalCF, order.Quantity,
			)},
		},
		{
			Key:     SectionCompetitorBenchmarking,
			Heading: "Competitor Benchmarking",
		},
		{
			Key:     SectionRecommendations,
			Heading: "Recommendations and Future Outlook",
			Paragraphs: []string{
				"Enhance traceability with blockchain by 2027; target 0.4 kg CO2e/kg by 2030 via solar processing.",
			},
		},
		{
			Key:        SectionAppendices,
			Heading:    "Appendices",
			Paragraphs: []string{"Sources: ISO 14067, Climatiq database."},
		},
	}

	table := Table{Columns: append([]string(nil), CompetitorColumns...)}
	for _, c := range competitors {
		table.Rows = append(table.Rows, []string{
			c.Name,
			FormatFigure(c.AvgPriceHKD),
			FormatFigure(c.FootprintPerUnitKg),
		})
	}

	return Report{
		Company:       profile.CompanyName,
		FurnitureType: order.FurnitureType,
		Title:         title,
		Sections:      sections,
		Competitors:   table,
		Estimate:      est,
	}
}

// NewReport runs the estimator, builds the competitor table and assembles
// the report, stamping it with a fresh ID and the given time.
func NewReport(order OrderRequest, profiles []CompetitorProfile, profile Profile, now time.Time) Report {
	est := Estimate(order)
	competitors := BuildCompetitorTable(profiles, est.UnitWeightKg)
	r := AssembleReport(order, est, competitors, profile)
	r.ID = uuid.NewString()
	r.GeneratedAt = now
	return r
}

// GenerateReport produces the PDF for an order in one call.
func GenerateReport(order OrderRequest, profiles []CompetitorProfile) ([]byte, error) {
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}
	r := NewReport(order, profiles, DefaultProfile, time.Now())
	return GenerateReportPDF(r)
}
