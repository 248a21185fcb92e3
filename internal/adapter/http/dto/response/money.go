package response

import "math"

// RoundMoney rounds a monetary amount half-up to cents. Pricing is kept
// at full float precision internally; rounding happens only here, at the
// presentation boundary.
func RoundMoney(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
