// Package digamma implements the digamma function ψ(x) = d/dx ln Γ(x) for float64 arguments.
//
// The method follows the Boost digamma implementation (John Maddock, 2006):
//
//  1. For x <= -1, the reflection formula
//
//     ψ(1-x) = ψ(x) + π/tan(πx)
//
//     is used to make x positive.
//
//  2. For x >= 10, the asymptotic expansion
//
//     ψ(x) = ln(x) - 1/(2x) - (B₂/(2x²) + B₄/(4x⁴) + B₆/(6x⁶) + ...)
//
//     is truncated after eight terms. For x >= 10 the remainder is below float64 resolution.
//
//  3. Otherwise the recurrence ψ(x+1) = ψ(x) + 1/x shifts x into [1, 2], where
//
//     ψ(x) = (x - root) * (Y + R(x-1))
//
//     with root the positive zero of ψ, Y a constant and R a minimax rational function
//     whose absolute error is small relative to Y.
//
// Errors of the two approximations are about 2.5e-17 (rational) and 1.5e-18 (asymptotic).
package digamma

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is returned by Evaluate when the argument is NaN or -Inf.
	ErrDomain = errors.New("digamma: argument outside of the domain")
	// ErrPole is returned by Evaluate when the argument is zero or a negative integer,
	// or when 1-x rounds to an integer, as it does for x = 1/2 - 2^52.
	ErrPole = errors.New("digamma: argument is a pole")
)

// asymptoticThreshold is the smallest argument evaluated with the asymptotic expansion.
const asymptoticThreshold = 10

// Digamma returns the digamma function of x.
//
// Special cases are:
//
//	Digamma(+Inf) = +Inf
//	Digamma(±0) = NaN
//	Digamma(n) = NaN for negative integers n
//	Digamma(-Inf) = NaN
//	Digamma(NaN) = NaN
//	Digamma(1/2 - 2^52) = NaN
//
// For x <= 1-2^52 the reflected argument 1-x rounds to an integer, so the
// half-integer 1/2-2^52 is reported as a pole like the integers below it.
// Accuracy degrades close to the poles, where the reflection term cancels.
func Digamma(x float64) float64 {
	y, _ := digamma(x)
	return y
}

// Evaluate returns the digamma function of x. It returns NaN and an error
// wrapping ErrDomain or ErrPole whenever Digamma would return NaN.
func Evaluate(x float64) (y float64, err error) {
	if y, err = digamma(x); err != nil {
		return y, fmt.Errorf("%w: x=%v", err, x)
	}
	return
}

func digamma(x float64) (float64, error) {

	switch {
	case math.IsNaN(x):
		return math.NaN(), ErrDomain
	case x == 0:
		return math.NaN(), ErrPole
	}

	var tmp float64

	if x <= -1 {
		var err error
		if x, tmp, err = reflect(x); err != nil {
			return math.NaN(), err
		}
	}

	if x >= asymptoticThreshold {
		return tmp + asymptotic(x), nil
	}

	x, tmp = reduce(x, tmp)

	return tmp + rational(x), nil
}
