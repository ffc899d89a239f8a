// Package format provides locale-aware display formatting for currency and
// percent values. All functions are pure: the output depends only on the
// value and the locale passed in.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Locale selects the display conventions for formatted values.
type Locale string

// Supported locales.
const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

// ParseLocale normalizes a locale string, falling back to French (the
// engine's primary audience) for anything unrecognized.
func ParseLocale(s string) Locale {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "en-us", "en-gb":
		return LocaleEN
	default:
		return LocaleFR
	}
}

// Currency returns a zero-decimal euro amount, e.g. "-1 234 €" (fr) or
// "-€1,234" (en).
func Currency(amount float64, locale Locale) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	rounded := math.Round(math.Abs(amount))

	switch locale {
	case LocaleEN:
		return sign + "€" + groupDigits(fmt.Sprintf("%.0f", rounded), ',')
	default:
		return sign + groupDigits(fmt.Sprintf("%.0f", rounded), ' ') + " €"
	}
}

// Percent formats a fractional rate with two decimals, e.g. 0.035 becomes
// "3,50 %" (fr) or "3.50%" (en).
func Percent(fraction float64, locale Locale) string {
	value := fraction * 100

	switch locale {
	case LocaleEN:
		return fmt.Sprintf("%.2f%%", value)
	default:
		return strings.ReplaceAll(fmt.Sprintf("%.2f", value), ".", ",") + " %"
	}
}

// Multiple formats an equity multiple, e.g. "1.85x" (en) or "1,85x" (fr).
func Multiple(value float64, locale Locale) string {
	formatted := fmt.Sprintf("%.2fx", value)
	if locale != LocaleEN {
		formatted = strings.Replace(formatted, ".", ",", 1)
	}
	return formatted
}

func groupDigits(intPart string, separator rune) string {
	if len(intPart) <= 3 {
		return intPart
	}

	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteRune(separator)
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
