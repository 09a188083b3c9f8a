package templates

import (
	"strconv"

	"carbonreport/services"
)

// ReportFormData is everything the order form renders: the current values,
// field errors from the last submit, and the phone warning.
type ReportFormData struct {
	Order        services.OrderRequest
	Errors       map[string]string
	PhoneWarning string
}

// ReportPreviewData is the computed result shown under the form.
type ReportPreviewData struct {
	Order        services.OrderRequest
	Estimate     services.FootprintEstimate
	Competitors  []services.CompetitorEntry
	PhoneWarning string
	PDFFilename  string
}

// CompetitorRow is one editable line of the benchmark configuration.
type CompetitorRow struct {
	ID             string
	Name           string
	AvgPrice       float64
	EmissionFactor float64
	SortOrder      int
}

// FormID is the id of the row's save form; the row inputs bind to it.
func (r CompetitorRow) FormID() string {
	return "competitor-" + r.ID
}

// CompetitorFormData carries the values and errors of the add form.
type CompetitorFormData struct {
	Name           string
	AvgPrice       string
	EmissionFactor string
	SortOrder      string
	Errors         map[string]string
}

// EmissionFactorValue is the factor to prefill, the benchmark default when
// nothing was entered.
func (f CompetitorFormData) EmissionFactorValue() string {
	if f.EmissionFactor == "" {
		return formatNumber(services.DefaultCompetitorEmissionFactor)
	}
	return f.EmissionFactor
}

// CompetitorsPageData drives the competitors page.
type CompetitorsPageData struct {
	Rows          []CompetitorRow
	Form          CompetitorFormData
	UsingDefaults bool
}

// formatNumber renders a float exactly as typed, without rounding.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// maxDimension is the upper bound advertised on the dimension inputs.
var maxDimension = formatNumber(services.MaxDimension)
