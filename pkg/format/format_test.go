package format

import (
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		locale   Locale
		expected string
	}{
		{
			name:     "French thousands grouping",
			amount:   1234567,
			locale:   LocaleFR,
			expected: "1 234 567 €",
		},
		{
			name:     "English thousands grouping",
			amount:   1234567,
			locale:   LocaleEN,
			expected: "€1,234,567",
		},
		{
			name:     "Negative French amount",
			amount:   -1234.56,
			locale:   LocaleFR,
			expected: "-1 235 €",
		},
		{
			name:     "Negative English amount",
			amount:   -1234.56,
			locale:   LocaleEN,
			expected: "-€1,235",
		},
		{
			name:     "Small amount no grouping",
			amount:   900,
			locale:   LocaleFR,
			expected: "900 €",
		},
		{
			name:     "Zero",
			amount:   0,
			locale:   LocaleEN,
			expected: "€0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount, tt.locale)
			if result != tt.expected {
				t.Errorf("Currency(%v, %s) = %q, expected %q", tt.amount, tt.locale, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		locale   Locale
		expected string
	}{
		{
			name:     "French fraction",
			fraction: 0.035,
			locale:   LocaleFR,
			expected: "3,50 %",
		},
		{
			name:     "English fraction",
			fraction: 0.035,
			locale:   LocaleEN,
			expected: "3.50%",
		},
		{
			name:     "Entered 8.5 percent round trips as display",
			fraction: 0.085,
			locale:   LocaleEN,
			expected: "8.50%",
		},
		{
			name:     "Negative rate",
			fraction: -0.012,
			locale:   LocaleEN,
			expected: "-1.20%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percent(tt.fraction, tt.locale)
			if result != tt.expected {
				t.Errorf("Percent(%v, %s) = %q, expected %q", tt.fraction, tt.locale, result, tt.expected)
			}
		})
	}
}

func TestMultiple(t *testing.T) {
	if got := Multiple(1.85, LocaleEN); got != "1.85x" {
		t.Errorf("Multiple(1.85, en) = %q, expected 1.85x", got)
	}
	if got := Multiple(1.85, LocaleFR); got != "1,85x" {
		t.Errorf("Multiple(1.85, fr) = %q, expected 1,85x", got)
	}
}

func TestParseLocale(t *testing.T) {
	if got := ParseLocale("EN-us"); got != LocaleEN {
		t.Errorf("ParseLocale(EN-us) = %q, expected en", got)
	}
	if got := ParseLocale(""); got != LocaleFR {
		t.Errorf("ParseLocale('') = %q, expected fr fallback", got)
	}
	if got := ParseLocale("de"); got != LocaleFR {
		t.Errorf("ParseLocale(de) = %q, expected fr fallback", got)
	}
}
