package view

import (
	"testing"

	"github.com/mbaillet/immosim/internal/engine"
)

func flows(cumulatives ...float64) []engine.YearlyCashFlow {
	result := make([]engine.YearlyCashFlow, len(cumulatives))
	prior := 0.0
	for i, c := range cumulatives {
		result[i] = engine.YearlyCashFlow{Year: i, NetChange: c - prior, Cumulative: c}
		prior = c
	}
	return result
}

func TestDetectBreakeven(t *testing.T) {
	tests := []struct {
		name         string
		cumulatives  []float64
		expectedKind BreakevenKind
		expectedYear int
	}{
		{
			name:         "Crosses to positive",
			cumulatives:  []float64{-1000, -400, 200, 900},
			expectedKind: BreakevenEarned,
			expectedYear: 2,
		},
		{
			name:         "Crosses exactly to zero",
			cumulatives:  []float64{-1000, -400, 0, 900},
			expectedKind: BreakevenEarned,
			expectedYear: 2,
		},
		{
			name:         "Never breaks even",
			cumulatives:  []float64{-1000, -400, -100},
			expectedKind: BreakevenNone,
		},
		{
			name:         "Never negative reports immediate breakeven at year zero",
			cumulatives:  []float64{100, 200},
			expectedKind: BreakevenImmediate,
			expectedYear: 0,
		},
		{
			name:         "Starts at zero",
			cumulatives:  []float64{0, 100},
			expectedKind: BreakevenImmediate,
			expectedYear: 0,
		},
		{
			name:         "Empty sequence",
			cumulatives:  nil,
			expectedKind: BreakevenNone,
		},
		{
			name:         "Dips then recovers after positive start",
			cumulatives:  []float64{100, -50, 30},
			expectedKind: BreakevenImmediate,
			expectedYear: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectBreakeven(flows(tt.cumulatives...))
			if result.Kind != tt.expectedKind {
				t.Fatalf("Kind = %v, expected %v", result.Kind, tt.expectedKind)
			}
			if result.Kind != BreakevenNone && result.Year != tt.expectedYear {
				t.Errorf("Year = %d, expected %d", result.Year, tt.expectedYear)
			}
		})
	}
}

func TestDetectBreakevenUsesEngineYearIndex(t *testing.T) {
	// Breakeven reports the engine's year value, not the slice position.
	sequence := []engine.YearlyCashFlow{
		{Year: 1, NetChange: -1000, Cumulative: -1000},
		{Year: 2, NetChange: 600, Cumulative: -400},
		{Year: 3, NetChange: 600, Cumulative: 200},
	}

	result := DetectBreakeven(sequence)
	if result.Kind != BreakevenEarned || result.Year != 3 {
		t.Errorf("got kind=%v year=%d, expected earned breakeven at year 3", result.Kind, result.Year)
	}
}

func TestCheckCumulative(t *testing.T) {
	consistent := []engine.YearlyCashFlow{
		{Year: 0, NetChange: -50000, Cumulative: -50000},
		{Year: 1, NetChange: 4000, Cumulative: -46000},
		{Year: 2, NetChange: 4000, Cumulative: -42000},
	}
	if err := CheckCumulative(consistent, 0.01); err != nil {
		t.Errorf("unexpected error for consistent sequence: %v", err)
	}

	broken := []engine.YearlyCashFlow{
		{Year: 0, NetChange: -50000, Cumulative: -50000},
		{Year: 1, NetChange: 4000, Cumulative: -40000},
	}
	if err := CheckCumulative(broken, 0.01); err == nil {
		t.Error("expected error for inconsistent sequence")
	}
}
