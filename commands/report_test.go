package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carbonreport/commands"
	"carbonreport/testhelpers"
)

func runReport(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	cmd := commands.NewReportCommand(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestReportCommand_WritesPDF(t *testing.T) {
	dir := t.TempDir()

	path, err := runReport(t, "--type", "table", "--length", "120", "--quantity", "3", "--client", "Acme", "--out", dir)
	if err != nil {
		t.Fatalf("report command failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("expected report in %s, got %s", dir, path)
	}
	if !strings.HasPrefix(filepath.Base(path), "Carbon_Footprint_Report_Table_") || !strings.HasSuffix(path, ".pdf") {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestReportCommand_WritesXLSX(t *testing.T) {
	dir := t.TempDir()

	path, err := runReport(t, "--format", "xlsx", "--out", dir)
	if err != nil {
		t.Fatalf("report command failed: %v", err)
	}
	if !strings.HasSuffix(path, ".xlsx") {
		t.Errorf("expected .xlsx output, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestReportCommand_NormalizesFormat(t *testing.T) {
	tests := []struct {
		format string
		suffix string
	}{
		{"PDF", ".pdf"},
		{"Xlsx", ".xlsx"},
		{"EXCEL", ".xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path, err := runReport(t, "--format", tt.format, "--out", t.TempDir())
			if err != nil {
				t.Fatalf("report command failed: %v", err)
			}
			if !strings.HasSuffix(path, tt.suffix) {
				t.Errorf("expected %s output, got %q", tt.suffix, path)
			}
		})
	}
}

func TestReportCommand_RejectsInvalidOrder(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"--type", "bed"}},
		{"zero length", []string{"--length", "0"}},
		{"zero quantity", []string{"--quantity", "0"}},
		{"unknown format", []string{"--format", "docx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if _, err := runReport(t, append(tt.args, "--out", dir)...); err == nil {
				t.Fatal("expected an error")
			}
			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Errorf("expected no files written, found %d", len(entries))
			}
		})
	}
}
