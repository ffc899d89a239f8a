package view

import (
	"testing"

	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/pkg/format"
)

func TestMetricCards(t *testing.T) {
	m := engine.Metrics{
		IRR:             0.061,
		NPV:             12500,
		MonthlyCashflow: -45,
		EquityMultiple:  1.8,
	}

	cards := MetricCards(m, DefaultThresholds(), format.LocaleEN)
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}

	byKey := map[string]MetricCard{}
	for _, c := range cards {
		byKey[c.Key] = c
	}

	if card := byKey["irr"]; card.Tone != ToneGood || card.Value != "6.10%" {
		t.Errorf("irr card = %+v, expected good tone and 6.10%%", card)
	}
	if card := byKey["npv"]; card.Tone != ToneGood || card.Value != "€12,500" {
		t.Errorf("npv card = %+v, expected good tone and €12,500", card)
	}
	if card := byKey["monthly_cashflow"]; card.Tone != TonePoor || card.Value != "-€45" {
		t.Errorf("cashflow card = %+v, expected poor tone and -€45", card)
	}
	if card := byKey["equity_multiple"]; card.Tone != ToneWarn || card.Value != "1.80x" {
		t.Errorf("equity card = %+v, expected warn tone and 1.80x", card)
	}
}

func TestMetricCardsFrenchLabels(t *testing.T) {
	cards := MetricCards(engine.Metrics{IRR: 0.02}, DefaultThresholds(), format.LocaleFR)
	if cards[0].Label != "TRI" {
		t.Errorf("first card label = %q, expected TRI", cards[0].Label)
	}
	if cards[0].Tone != TonePoor {
		t.Errorf("IRR 2%% tone = %q, expected poor", cards[0].Tone)
	}
}

func TestRecommendedTier(t *testing.T) {
	tests := []struct {
		recommended string
		expected    RegimeTier
	}{
		{recommended: "Micro-BIC", expected: TierMicro},
		{recommended: "Micro-Foncier", expected: TierMicro},
		{recommended: "LMNP Réel", expected: TierReel},
		{recommended: "Revenu Foncier", expected: TierReel},
	}

	for _, tt := range tests {
		fc := engine.FiscalComparison{Recommended: tt.recommended}
		if got := RecommendedTier(fc); got != tt.expected {
			t.Errorf("RecommendedTier(%q) = %q, expected %q", tt.recommended, got, tt.expected)
		}
	}
}

func TestHighlightSavings(t *testing.T) {
	if HighlightSavings(engine.FiscalComparison{AnnualSavings: 99}) {
		t.Error("savings of 99 must not be highlighted")
	}
	if HighlightSavings(engine.FiscalComparison{AnnualSavings: 100}) {
		t.Error("savings of exactly 100 must not be highlighted")
	}
	if !HighlightSavings(engine.FiscalComparison{AnnualSavings: 101}) {
		t.Error("savings of 101 must be highlighted")
	}
}

func TestLocalizeAlerts(t *testing.T) {
	alerts := []engine.Alert{
		{Type: engine.AlertError, Icon: "🔴", MessageFR: "Cash-flow négatif", MessageEN: "Negative cash flow"},
		{Type: engine.AlertSuccess, Icon: "✅", MessageFR: "Rendement > taux sans risque"},
	}

	en := LocalizeAlerts(alerts, format.LocaleEN)
	if len(en) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(en))
	}
	// Engine order preserved.
	if en[0].Message != "Negative cash flow" {
		t.Errorf("first alert = %q, expected English message", en[0].Message)
	}
	// Missing localization falls back rather than going blank.
	if en[1].Message != "Rendement > taux sans risque" {
		t.Errorf("second alert = %q, expected French fallback", en[1].Message)
	}

	if LocalizeAlerts(nil, format.LocaleFR) != nil {
		t.Error("expected nil for no alerts")
	}
}
