package stats

// CanonPercent canonicalizes a stored ratio field that may be expressed
// either as a fraction in [0,1] or already as a percentage: values at or
// below 1.0 are scaled by 100, anything larger passes through. The rule
// is applied uniformly to every shooting/possession percentage field
// before display, and is idempotent for values above 1.
func CanonPercent(v float64) float64 {
	if v <= 1.0 {
		return v * 100.0
	}
	return v
}
