package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"carbonreport/collections"
	"carbonreport/services"
	"carbonreport/templates"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// parseOrderForm reads an OrderRequest from the submitted form. The returned
// map holds field errors, both unparsable numbers and violated minimums.
func parseOrderForm(r *http.Request) (services.OrderRequest, map[string]string) {
	errs := make(map[string]string)
	order := services.OrderRequest{
		ClientName:  strings.TrimSpace(r.FormValue("client_name")),
		ClientEmail: strings.TrimSpace(r.FormValue("client_email")),
		ClientPhone: strings.TrimSpace(r.FormValue("client_phone")),
	}

	if ft, err := services.ParseFurnitureType(r.FormValue("furniture_type")); err != nil {
		errs["furniture_type"] = "Select a furniture type"
	} else {
		order.FurnitureType = ft
	}

	parseDim := func(name string, dst *float64) {
		v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(name)), 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			errs[name] = "Must be a number"
			return
		}
		*dst = v
	}
	parseDim("length", &order.Length)
	parseDim("width", &order.Width)
	parseDim("height", &order.Height)

	if q, err := strconv.Atoi(strings.TrimSpace(r.FormValue("quantity"))); err != nil {
		errs["quantity"] = "Must be a whole number"
	} else {
		order.Quantity = q
	}

	for field, msg := range services.FieldErrors(order.Validate()) {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}

	return order, errs
}

// competitorProfiles loads the configured benchmark, falling back to the
// built-in table if the store cannot be read.
func competitorProfiles(e *core.RequestEvent, app *pocketbase.PocketBase) []services.CompetitorProfile {
	profiles, err := collections.CompetitorProfiles(app)
	if err != nil {
		logger(e).Warn("report: could not load competitors, using defaults", "error", err)
		return append([]services.CompetitorProfile(nil), services.DefaultCompetitors...)
	}
	return profiles
}

// HandleReportForm renders the order form with its default values.
func HandleReportForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ReportFormData{
			Order:  services.DefaultOrder(),
			Errors: make(map[string]string),
		}

		var component templ.Component
		if isHTMX(e.Request) {
			component = templates.ReportFormContent(data)
		} else {
			component = templates.ReportFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandlePhoneCheck returns the inline phone warning fragment.
func HandlePhoneCheck(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		phone := strings.TrimSpace(e.Request.FormValue("client_phone"))
		return templates.PhoneWarning(services.PhoneWarning(phone)).Render(e.Request.Context(), e.Response)
	}
}

// HandleReportPreview computes the footprint and renders the result panel.
// Invalid input re-renders the form with field errors instead.
func HandleReportPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		order, errs := parseOrderForm(e.Request)
		warning := services.PhoneWarning(order.ClientPhone)

		if len(errs) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.ReportFormData{Order: order, Errors: errs, PhoneWarning: warning}
			if isHTMX(e.Request) {
				e.Response.Header().Set("HX-Retarget", "#report-form")
				e.Response.Header().Set("HX-Reswap", "outerHTML")
				return templates.ReportFormContent(data).Render(e.Request.Context(), e.Response)
			}
			return templates.ReportFormPage(data).Render(e.Request.Context(), e.Response)
		}

		est := services.Estimate(order)
		data := templates.ReportPreviewData{
			Order:        order,
			Estimate:     est,
			Competitors:  services.BuildCompetitorTable(competitorProfiles(e, app), est.UnitWeightKg),
			PhoneWarning: warning,
			PDFFilename:  services.ReportFilename(order.FurnitureType, time.Now(), "pdf"),
		}

		if isHTMX(e.Request) {
			return templates.ReportPreview(data).Render(e.Request.Context(), e.Response)
		}
		return templates.Page("Carbon Footprint - RiceFort", templates.ReportPreview(data)).Render(e.Request.Context(), e.Response)
	}
}

// buildReport validates the submitted order and assembles its report.
func buildReport(e *core.RequestEvent, app *pocketbase.PocketBase) (services.Report, map[string]string) {
	order, errs := parseOrderForm(e.Request)
	if len(errs) > 0 {
		return services.Report{}, errs
	}
	return services.NewReport(order, competitorProfiles(e, app), services.DefaultProfile, time.Now()), nil
}

// HandleReportPDF generates and downloads the PDF report for the order.
func HandleReportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		report, errs := buildReport(e, app)
		if len(errs) > 0 {
			return ErrorToast(e, http.StatusBadRequest, "Please check the furniture details")
		}

		pdfBytes, err := services.GenerateReportPDF(report)
		if err != nil {
			logger(e).Error("report_pdf: failed to generate", "reportId", report.ID, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		logger(e).Info("report_pdf: generated",
			"reportId", report.ID,
			"furnitureType", string(report.FurnitureType),
			"totalFootprintKg", report.Estimate.TotalFootprintKg,
			"bytes", len(pdfBytes),
		)

		filename := services.ReportFilename(report.FurnitureType, report.GeneratedAt, "pdf")
		writeAttachment(e, "application/pdf", filename, report.ID, pdfBytes)
		return nil
	}
}

// HandleReportExcel generates and downloads the XLSX workbook for the order.
func HandleReportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		report, errs := buildReport(e, app)
		if len(errs) > 0 {
			return ErrorToast(e, http.StatusBadRequest, "Please check the furniture details")
		}

		xlsxBytes, err := services.GenerateReportExcel(report)
		if err != nil {
			logger(e).Error("report_excel: failed to generate", "reportId", report.ID, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := services.ReportFilename(report.FurnitureType, report.GeneratedAt, "xlsx")
		writeAttachment(e, xlsxContentType, filename, report.ID, xlsxBytes)
		return nil
	}
}

func writeAttachment(e *core.RequestEvent, contentType, filename, reportID string, body []byte) {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Header().Set("X-Report-ID", reportID)
	e.Response.Write(body)
}
