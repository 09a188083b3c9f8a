package services

import (
	"bytes"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// ExcelSheetName is the single worksheet of the XLSX export.
const ExcelSheetName = "Carbon Footprint"

// GenerateReportExcel writes the report's key figures and competitor table
// to an XLSX workbook and returns the file contents.
func GenerateReportExcel(r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, ExcelSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := ExcelSheetName

	widths := map[string]float64{"A": 34, "B": 20, "C": 28}
	for c, w := range widths {
		if err := f.SetColWidth(sheet, c, c, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	// Grey header and beige body, matching the PDF table.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#F5F5F5", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#808080"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F5F5DC"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	// ── Title ───────────────────────────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", "C1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(r.Title))
	f.SetCellStyle(sheet, "A1", "C1", titleStyle)

	if header, ok := r.Section(SectionHeader); ok {
		for i, p := range header.Paragraphs {
			cell := fmt.Sprintf("A%d", i+2)
			f.SetCellValue(sheet, cell, sanitizeExcelCell(p))
		}
	}

	// ── Figures ─────────────────────────────────────────────────────────

	figures := []struct {
		label string
		value float64
	}{
		{"Volume per unit (m³)", r.Estimate.VolumeM3},
		{"Weight per unit (kg)", r.Estimate.UnitWeightKg},
		{"CF per unit (kg CO2e)", r.Estimate.UnitFootprintKg},
		{"Total weight (kg)", r.Estimate.TotalWeightKg},
		{"Total CF (kg CO2e)", r.Estimate.TotalFootprintKg},
	}

	row := 5
	for _, fig := range figures {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fig.label)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), roundFigure(fig.value))
		row++
	}

	// ── Competitor table ────────────────────────────────────────────────

	row++
	columns := []string{"A", "B", "C"}
	for i, h := range r.Competitors.Columns {
		if i >= len(columns) {
			break
		}
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", columns[i], row), h)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), headerStyle)
	row++

	for _, cells := range r.Competitors.Rows {
		for i, c := range cells {
			if i >= len(columns) {
				break
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", columns[i], row), sanitizeExcelCell(c))
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), bodyStyle)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Report ID")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.ID)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// roundFigure keeps spreadsheet values consistent with the 2-decimal text.
func roundFigure(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Client names are free text.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
