package view

import (
	"strings"

	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/pkg/constants"
)

// RegimeTier is the display tier of a recommended fiscal regime. Which
// regime is better is decided entirely by the engine; this is a label
// lookup, nothing more.
type RegimeTier string

// Regime tiers.
const (
	TierMicro RegimeTier = "micro"
	TierReel  RegimeTier = "reel"
)

// RecommendedTier maps the recommended regime name to its display tier.
// Names containing "micro" (Micro-BIC, Micro-Foncier) are the simplified
// tier; everything else (LMNP Réel, Revenu Foncier, LMP) is the réel tier.
func RecommendedTier(fc engine.FiscalComparison) RegimeTier {
	if strings.Contains(strings.ToLower(fc.Recommended), "micro") {
		return TierMicro
	}
	return TierReel
}

// HighlightSavings reports whether the annual savings are worth calling out
// in the comparison display. Sub-100 differences are noise.
func HighlightSavings(fc engine.FiscalComparison) bool {
	return fc.AnnualSavings > constants.SavingsHighlightThreshold
}
