package digamma

import (
	"math"

	"github.com/tuneinsight/specfun/utils/polynomial"
)

// Coefficients B_{2k}/(2k) of the asymptotic series in z = 1/x², ascending order.
var asymP = []float64{
	0.083333333333333333333333333333333333333333333333333,
	-0.0083333333333333333333333333333333333333333333333333,
	0.003968253968253968253968253968253968253968253968254,
	-0.0041666666666666666666666666666666666666666666666667,
	0.0075757575757575757575757575757575757575757575757576,
	-0.021092796092796092796092796092796092796092796092796,
	0.083333333333333333333333333333333333333333333333333,
	-0.44325980392156862745098039215686274509803921568627,
}

var asymPoly = polynomial.NewEvaluator(asymP)

// asymptotic evaluates ψ(x) for x >= 10.
//
// The series is applied to y = x-1, ψ(x) = ψ(y) + 1/y, which turns
// ln(y) - 1/(2y) into ln(y) + 1/(2y).
func asymptotic(x float64) float64 {
	x -= 1
	y := math.Log(x) + 1/(2*x)
	z := 1 / (x * x)
	return y - z*asymPoly(z)
}
