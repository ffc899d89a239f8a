package params

// FromPercent converts a UI-entered whole-number percent to the fractional
// representation the engine expects (8.5 becomes 0.085). It must be applied
// exactly once, at request-build time; params structs always hold the
// UI-entered value.
func FromPercent(pct float64) float64 {
	return pct / 100
}

// ToPercent converts an engine fraction back to a UI percent (0.085 becomes
// 8.5). ToPercent(FromPercent(x)) == x up to floating rounding.
func ToPercent(fraction float64) float64 {
	return fraction * 100
}
