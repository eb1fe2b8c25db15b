package digamma

import (
	"github.com/tuneinsight/specfun/utils/polynomial"
)

// The positive zero of ψ, split in three parts. They must be subtracted
// from x one after the other: the zero is irrational and needs about twice
// the digits of x to avoid cancellation, so that ψ(x) does not vanish for
// x rounded to its neighbouring float64.
const (
	root1 = 1569415565.0 / 1073741824
	root2 = (381566830.0 / 1073741824) / 1073741824
	root3 = 0.9016312093258695918615325266959189453125e-19
)

// ratY is the constant Y of ψ(x) = (x - root) * (Y + R(x-1)) on [1, 2].
const ratY = 0.99558162689208984

// Minimax coefficients of R(t) = P(t)/Q(t) for t in [0, 1], ascending order.
var (
	ratP = []float64{
		0.25479851061131551,
		-0.32555031186804491,
		-0.65031853770896507,
		-0.28919126444774784,
		-0.045251321448739056,
		-0.0020713321167745952,
		0,
	}

	ratQ = []float64{
		1.0,
		2.0767117023730469,
		1.4606242909763515,
		0.43593529692665969,
		0.054151797245674225,
		0.0021284987017821144,
		-0.55789841321675513e-6,
	}
)

var ratR = polynomial.NewRationalEvaluator(ratP, ratQ)

// rational evaluates ψ(x) for x in [1, 2].
func rational(x float64) float64 {
	g := x - root1
	g -= root2
	g -= root3
	r := ratR(x - 1)
	return g*ratY + g*r
}
