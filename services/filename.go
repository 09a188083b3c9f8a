package services

import (
	"fmt"
	"strings"
	"time"
)

// ReportFilename returns the download name for a report, e.g.
// Carbon_Footprint_Report_Chair_2026-10-19.pdf.
func ReportFilename(t FurnitureType, day time.Time, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("Carbon_Footprint_Report_%s_%s.%s", SanitizeFilename(string(t)), day.Format(time.DateOnly), ext)
}

// SanitizeFilename removes characters that are unsafe for filenames.
func SanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
