package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{9.5, "R$ 9,50"},
		{100, "R$ 100,00"},
		{1234.56, "R$ 1.234,56"},
		{15750, "R$ 15.750,00"},
		{1234567.89, "R$ 1.234.567,89"},
		{-250.75, "-R$ 250,75"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.value); got != tt.expected {
			t.Errorf("FormatMoney(%.2f): expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.0%"},
		{50, "50.0%"},
		{33.33, "33.3%"},
		{100, "100.0%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.value); got != tt.expected {
			t.Errorf("FormatPercent(%.2f): expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}
