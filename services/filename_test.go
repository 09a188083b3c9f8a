package services

import (
	"testing"
	"time"
)

func TestReportFilename(t *testing.T) {
	day := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	tests := []struct {
		ft   FurnitureType
		ext  string
		want string
	}{
		{FurnitureChair, "pdf", "Carbon_Footprint_Report_Chair_2026-10-19.pdf"},
		{FurnitureCabinet, ".xlsx", "Carbon_Footprint_Report_Cabinet_2026-10-19.xlsx"},
	}
	for _, tt := range tests {
		if got := ReportFilename(tt.ft, day, tt.ext); got != tt.want {
			t.Errorf("ReportFilename(%s, %s) = %q, want %q", tt.ft, tt.ext, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Dining Table", "Dining-Table"},
		{"slashes to hyphens", "a/b", "a-b"},
		{"backslashes", "a\\b", "a-b"},
		{"colons", "a:b", "a-b"},
		{"no special chars", "Sofa", "Sofa"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
