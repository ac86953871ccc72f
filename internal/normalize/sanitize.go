package normalize

import "math"

// SanitizePrice maps the feed's invalid-price sentinel to zero. Venues
// fill fields they have no value for with the maximum float64; every
// other value, including negatives, passes through untouched.
func SanitizePrice(price float64) float64 {
	if price == math.MaxFloat64 {
		return 0
	}
	return price
}
