package services

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateReportPDF_Basic(t *testing.T) {
	r := NewReport(testOrder(), DefaultCompetitors, DefaultProfile, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	result, err := GenerateReportPDF(r)
	if err != nil {
		t.Fatalf("GenerateReportPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateReportPDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateReportPDF_NoCompetitors(t *testing.T) {
	o := testOrder()
	r := AssembleReport(o, Estimate(o), nil, DefaultProfile)

	result, err := GenerateReportPDF(r)
	if err != nil {
		t.Fatalf("GenerateReportPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateReportPDF() returned empty bytes")
	}
}

func TestGenerateReportPDF_LongClientName(t *testing.T) {
	o := testOrder()
	o.ClientName = strings.Repeat("Very Long Client Holdings ", 20)
	r := AssembleReport(o, Estimate(o), BuildCompetitorTable(DefaultCompetitors, 99), DefaultProfile)

	if _, err := GenerateReportPDF(r); err != nil {
		t.Fatalf("GenerateReportPDF() error = %v", err)
	}
}

func TestGenerateReportPDF_WideGlyphClientName(t *testing.T) {
	o := testOrder()
	o.ClientName = strings.Repeat("WMWMWMWM ", 60)
	r := AssembleReport(o, Estimate(o), BuildCompetitorTable(DefaultCompetitors, 99), DefaultProfile)

	result, err := GenerateReportPDF(r)
	if err != nil {
		t.Fatalf("GenerateReportPDF() error = %v", err)
	}
	if !strings.HasPrefix(string(result), "%PDF-") {
		t.Errorf("result does not start with PDF header")
	}
	if !strings.Contains(r.Sections[0].Paragraphs[0], "WMWMWMWM") {
		t.Errorf("expected the client name in the header paragraph, got %q", r.Sections[0].Paragraphs[0])
	}
}
