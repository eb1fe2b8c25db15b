package digamma

import (
	"math"
)

// reflect maps x <= -1 to 1-x >= 2 and returns it together with the
// correction term π/tan(π(1-x)) of the reflection formula.
//
// The argument of tan is reduced to the fractional part of 1-x, folded
// into (-0.5, 0.5]. A zero remainder means x is a negative integer.
func reflect(x float64) (xr, correction float64, err error) {

	xr = 1 - x

	if math.IsInf(xr, 1) {
		return xr, math.NaN(), ErrDomain
	}

	rem := xr - math.Floor(xr)

	if rem > 0.5 {
		rem -= 1
	}

	if rem == 0 {
		return xr, math.NaN(), ErrPole
	}

	return xr, math.Pi / math.Tan(math.Pi*rem), nil
}
