package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"carbonreport/services"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestReportFormContent_EscapesValues(t *testing.T) {
	order := services.DefaultOrder()
	order.ClientName = `<script>alert("x")</script>`

	html := render(t, ReportFormContent(ReportFormData{Order: order, Errors: map[string]string{}}))

	if strings.Contains(html, "<script>alert") {
		t.Error("client name was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped client name in output")
	}
}

func TestReportFormContent_SelectsFurnitureType(t *testing.T) {
	order := services.DefaultOrder()
	order.FurnitureType = services.FurnitureSofa

	html := render(t, ReportFormContent(ReportFormData{Order: order}))

	if !strings.Contains(html, `<option value="Sofa" selected>`) {
		t.Error("expected Sofa to be selected")
	}
	if strings.Contains(html, `<option value="Chair" selected>`) {
		t.Error("Chair should not be selected")
	}
}

func TestReportFormContent_FieldErrors(t *testing.T) {
	html := render(t, ReportFormContent(ReportFormData{
		Order:  services.DefaultOrder(),
		Errors: map[string]string{"length": "must be no less than 1", "form": "bad request"},
	}))

	for _, want := range []string{"must be no less than 1", "bad request"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestReportFormContent_KeepsDimensionPrecision(t *testing.T) {
	order := services.DefaultOrder()
	order.Length = 50.125
	order.Width = 40

	html := render(t, ReportFormContent(ReportFormData{Order: order}))

	for _, want := range []string{
		`name="length" value="50.125"`,
		`name="width" value="40"`,
		`max="1000"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestPhoneWarning(t *testing.T) {
	if got := render(t, PhoneWarning("")); got != "" {
		t.Errorf("expected no output for empty warning, got %q", got)
	}
	got := render(t, PhoneWarning("Please enter numbers only for the phone number."))
	if !strings.Contains(got, `role="alert"`) {
		t.Errorf("expected an alert, got %q", got)
	}
}

func TestReportPreview_HiddenFieldsCarryOrder(t *testing.T) {
	order := services.DefaultOrder()
	order.Length = 62.5
	order.Quantity = 4
	order.ClientName = `A "quoted" name`
	est := services.Estimate(order)

	html := render(t, ReportPreview(ReportPreviewData{
		Order:       order,
		Estimate:    est,
		Competitors: services.BuildCompetitorTable(services.DefaultCompetitors, est.UnitWeightKg),
	}))

	for _, want := range []string{
		`name="length" value="62.5"`,
		`name="quantity" value="4"`,
		`value="A &#34;quoted&#34; name"`,
		"HK$3,500.00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestCompetitorsContent_RowsAndDefaults(t *testing.T) {
	html := render(t, CompetitorsContent(CompetitorsPageData{UsingDefaults: true}))
	if !strings.Contains(html, "No competitors configured") {
		t.Error("expected defaults notice")
	}

	html = render(t, CompetitorsContent(CompetitorsPageData{
		Rows: []CompetitorRow{{ID: "abc", Name: "IKEA", AvgPrice: 499, EmissionFactor: 0.8}},
	}))
	for _, want := range []string{`form="competitor-abc"`, `hx-delete="/competitors/abc"`, `value="499"`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestComponent_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := PhoneWarning("x").Render(ctx, &buf); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}

func TestPage_WrapsContent(t *testing.T) {
	html := render(t, Page("Title & Co", PhoneWarning("hello")))
	for _, want := range []string{"<!doctype html>", "Title &amp; Co", "hello", "htmx.org"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}
