// Package view contains the pure transformations turning engine responses
// into display-ready values. Nothing here performs I/O or holds state; every
// function is a pure mapping so it can be tested without any surrounding
// provider.
package view

import "github.com/mbaillet/immosim/pkg/constants"

// Quality classifies an investment by its IRR.
type Quality string

// Quality buckets.
const (
	QualityGood       Quality = "good"
	QualityAcceptable Quality = "acceptable"
	QualityPoor       Quality = "poor"
)

// Thresholds are the two classification cut points, as fractions.
type Thresholds struct {
	RiskFree float64
	Discount float64
}

// DefaultThresholds returns the standard risk-free and discount rates.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RiskFree: constants.DefaultRiskFreeRate,
		Discount: constants.DefaultDiscountRate,
	}
}

// Classify partitions the IRR into three buckets with no gap or overlap:
// good when irr > discount, acceptable when riskFree < irr <= discount,
// poor otherwise. Both upper bounds are strict, so a boundary value always
// resolves to the lower-quality bucket.
func Classify(irr float64, t Thresholds) Quality {
	switch {
	case irr > t.Discount:
		return QualityGood
	case irr > t.RiskFree:
		return QualityAcceptable
	default:
		return QualityPoor
	}
}
