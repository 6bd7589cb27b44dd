package rocket

import "math"

// sign returns the sign of a given number, and zero for zero.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// discArea returns the area of a disc of radius r.
func discArea(r float64) float64 {
	return math.Pi * (r * r)
}
