package view

import (
	"fmt"
	"math"

	"github.com/mbaillet/immosim/internal/engine"
)

// BreakevenKind distinguishes how (and whether) a cash-flow sequence breaks
// even.
type BreakevenKind int

// Breakeven kinds.
const (
	// BreakevenNone means cumulative cash flow never becomes non-negative.
	BreakevenNone BreakevenKind = iota

	// BreakevenImmediate means the sequence starts non-negative: there is
	// no negative-to-positive transition because there was never a deficit.
	BreakevenImmediate

	// BreakevenEarned means cumulative cash flow crossed from negative to
	// non-negative at Year.
	BreakevenEarned
)

// Breakeven is the result of breakeven detection.
type Breakeven struct {
	Kind BreakevenKind
	Year int
}

// DetectBreakeven finds the first year whose cumulative cash flow is
// non-negative after a negative prior year. A sequence that starts
// non-negative reports an immediate breakeven at its first year rather than
// none: a deal that never needs recovery is better than one that recovers,
// and collapsing the two into "no breakeven" loses that.
func DetectBreakeven(flows []engine.YearlyCashFlow) Breakeven {
	if len(flows) == 0 {
		return Breakeven{Kind: BreakevenNone}
	}
	if flows[0].Cumulative >= 0 {
		return Breakeven{Kind: BreakevenImmediate, Year: flows[0].Year}
	}
	for i := 1; i < len(flows); i++ {
		if flows[i-1].Cumulative < 0 && flows[i].Cumulative >= 0 {
			return Breakeven{Kind: BreakevenEarned, Year: flows[i].Year}
		}
	}
	return Breakeven{Kind: BreakevenNone}
}

// CheckCumulative verifies the running-sum invariant of a cash-flow
// sequence: cumulative[i] = cumulative[i-1] + net_change[i].
func CheckCumulative(flows []engine.YearlyCashFlow, tolerance float64) error {
	for i := 1; i < len(flows); i++ {
		expected := flows[i-1].Cumulative + flows[i].NetChange
		if math.Abs(flows[i].Cumulative-expected) > tolerance {
			return fmt.Errorf("cumulative cash flow inconsistent at year %d: got %v, expected %v",
				flows[i].Year, flows[i].Cumulative, expected)
		}
	}
	return nil
}
