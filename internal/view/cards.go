package view

import (
	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/pkg/format"
)

// Tone is the display color tier of a metric card.
type Tone string

// Tones.
const (
	ToneGood Tone = "good"
	ToneWarn Tone = "warn"
	TonePoor Tone = "poor"
)

// MetricCard is one display-ready headline metric.
type MetricCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Tone  Tone   `json:"tone"`
}

var cardLabels = map[format.Locale]map[string]string{
	format.LocaleFR: {
		"irr":              "TRI",
		"npv":              "VAN",
		"monthly_cashflow": "Cash-flow mensuel",
		"equity_multiple":  "Multiple de capital",
	},
	format.LocaleEN: {
		"irr":              "IRR",
		"npv":              "NPV",
		"monthly_cashflow": "Monthly cash flow",
		"equity_multiple":  "Equity multiple",
	},
}

// MetricCards renders the four headline cards. IRR tone follows the
// three-way classification; NPV and monthly cash flow key off their sign;
// the equity multiple keys off the doubled-capital and capital-loss
// thresholds the engine alerts also use.
func MetricCards(m engine.Metrics, t Thresholds, locale format.Locale) []MetricCard {
	labels, ok := cardLabels[locale]
	if !ok {
		labels = cardLabels[format.LocaleFR]
	}

	return []MetricCard{
		{
			Key:   "irr",
			Label: labels["irr"],
			Value: format.Percent(m.IRR, locale),
			Tone:  qualityTone(Classify(m.IRR, t)),
		},
		{
			Key:   "npv",
			Label: labels["npv"],
			Value: format.Currency(m.NPV, locale),
			Tone:  signTone(m.NPV),
		},
		{
			Key:   "monthly_cashflow",
			Label: labels["monthly_cashflow"],
			Value: format.Currency(m.MonthlyCashflow, locale),
			Tone:  signTone(m.MonthlyCashflow),
		},
		{
			Key:   "equity_multiple",
			Label: labels["equity_multiple"],
			Value: format.Multiple(m.EquityMultiple, locale),
			Tone:  multipleTone(m.EquityMultiple),
		},
	}
}

func qualityTone(q Quality) Tone {
	switch q {
	case QualityGood:
		return ToneGood
	case QualityAcceptable:
		return ToneWarn
	default:
		return TonePoor
	}
}

func signTone(value float64) Tone {
	if value >= 0 {
		return ToneGood
	}
	return TonePoor
}

func multipleTone(value float64) Tone {
	switch {
	case value >= 2:
		return ToneGood
	case value >= 1:
		return ToneWarn
	default:
		return TonePoor
	}
}
