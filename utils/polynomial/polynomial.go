// Package polynomial implements Horner evaluation of real polynomials and rational functions
// given by their coefficients in ascending order.
package polynomial

import (
	"golang.org/x/exp/constraints"
)

// Evaluate returns p(x) = coeffs[0] + coeffs[1]*x + ... + coeffs[n]*x^n.
// An empty coefficient slice evaluates to zero.
func Evaluate[T constraints.Float](coeffs []T, x T) (y T) {
	if len(coeffs) == 0 {
		return
	}
	y = coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return
}

// EvaluateRational returns p(x)/q(x), where num and den hold the coefficients
// of p and q in ascending order.
func EvaluateRational[T constraints.Float](num, den []T, x T) T {
	return Evaluate(num, x) / Evaluate(den, x)
}

// NewEvaluator returns a function evaluating the polynomial with the given coefficients.
// The coefficients are copied, later changes to coeffs do not affect the returned function.
func NewEvaluator[T constraints.Float](coeffs []T) func(x T) T {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return func(x T) T {
		return Evaluate(c, x)
	}
}

// NewRationalEvaluator returns a function evaluating num(x)/den(x).
// The coefficients are copied. Panics if num or den is empty.
func NewRationalEvaluator[T constraints.Float](num, den []T) func(x T) T {

	if len(num) == 0 || len(den) == 0 {
		panic("cannot NewRationalEvaluator: numerator and denominator must have at least one coefficient")
	}

	p := make([]T, len(num))
	copy(p, num)
	q := make([]T, len(den))
	copy(q, den)

	return func(x T) T {
		return Evaluate(p, x) / Evaluate(q, x)
	}
}
