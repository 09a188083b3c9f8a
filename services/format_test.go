package services

import "testing"

func TestFormatHKD_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "HK$0.00"},
		{"small integer", 5, "HK$5.00"},
		{"hundreds", 499, "HK$499.00"},
		{"thousands", 3500, "HK$3,500.00"},
		{"with decimals", 1234.56, "HK$1,234.56"},
		{"millions", 1234567.89, "HK$1,234,567.89"},
		{"exact million", 1000000, "HK$1,000,000.00"},
		{"negative", -2500, "-HK$2,500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHKD(tt.input); got != tt.expect {
				t.Errorf("FormatHKD(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyThousandsGrouping(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"1", "1"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
	}
	for _, tt := range tests {
		if got := applyThousandsGrouping(tt.input); got != tt.want {
			t.Errorf("applyThousandsGrouping(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatFigure(t *testing.T) {
	if got := FormatFigure(99.00000000000001); got != "99.00" {
		t.Errorf("FormatFigure = %q, want 99.00", got)
	}
	if got := FormatFigure(59.4); got != "59.40" {
		t.Errorf("FormatFigure = %q, want 59.40", got)
	}
}

func TestFormatDimension(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"whole number", 50, "50.0"},
		{"decimal", 40.5, "40.5"},
		{"small decimal", 1.25, "1.25"},
		{"three decimals", 50.125, "50.125"},
		{"large whole", 1000, "1000.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDimension(tt.input); got != tt.want {
				t.Errorf("FormatDimension(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
