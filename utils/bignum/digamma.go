package bignum

import (
	"errors"
	"math/big"
)

var (
	// ErrPole is returned by Digamma for zero and the negative integers.
	ErrPole = errors.New("bignum: digamma is undefined at non-positive integers")
	// ErrInfinite is returned by Digamma for infinite arguments.
	ErrInfinite = errors.New("bignum: digamma of an infinite argument")
)

const (
	// digammaShift is the lower bound of the asymptotic expansion: the
	// truncation error after digammaTerms terms is below 2^-200 beyond it.
	digammaShift = 48
	digammaTerms = 24
)

// digammaCoeffs holds B_{2k}/(2k) for k = 1, ..., digammaTerms.
var digammaCoeffs = func() (c []*big.Rat) {
	b := Bernoulli(2 * digammaTerms)
	c = make([]*big.Rat, digammaTerms)
	for k := 1; k <= digammaTerms; k++ {
		c[k-1] = new(big.Rat).Quo(b[2*k], big.NewRat(int64(2*k), 1))
	}
	return
}()

// Digamma returns ψ(x) with x.Prec() bits of precision.
//
// Non-positive arguments are reflected with ψ(x) = ψ(1-x) - π/tan(πx), the
// argument is then shifted above 48 with ψ(x) = ψ(x+1) - 1/x and the asymptotic
// series ln(x) - 1/(2x) - sum B_{2k}/(2k x^{2k}) is summed over 24 terms.
func Digamma(x *big.Float) (y *big.Float, err error) {

	if x.IsInf() {
		return nil, ErrInfinite
	}

	prec := x.Prec()
	one := NewFloat(1, prec)

	if x.Sign() <= 0 {

		if x.IsInt() {
			return nil, ErrPole
		}

		xr := new(big.Float).Sub(one, x)

		if y, err = Digamma(xr); err != nil {
			return
		}

		// ψ(x) = ψ(1-x) - π cot(πx)
		return y.Sub(y, piCot(x)), nil
	}

	acc := NewFloat(0, prec)
	xs := new(big.Float).Set(x)
	tmp := new(big.Float).SetPrec(prec)
	shift := NewFloat(digammaShift, prec)

	for xs.Cmp(shift) < 0 {
		tmp.Quo(one, xs)
		acc.Sub(acc, tmp)
		xs.Add(xs, one)
	}

	// ln(x) - 1/(2x)
	y = Log(xs)
	tmp.Quo(NewFloat(0.5, prec), xs)
	y.Sub(y, tmp)

	// sum_k B_{2k}/(2k) z^k with z = 1/x²
	z := new(big.Float).Mul(xs, xs)
	z.Quo(one, z)

	coeffs := make([]*big.Float, len(digammaCoeffs))
	for i := range coeffs {
		coeffs[i] = new(big.Float).SetPrec(prec).SetRat(digammaCoeffs[i])
	}

	series := MonomialEval(z, coeffs)
	series.Mul(series, z)

	y.Sub(y, series)
	y.Add(y, acc)

	return y, nil
}

// piCot returns π cot(πx), reducing x to its fractional part in (-1/2, 1/2].
func piCot(x *big.Float) *big.Float {

	prec := x.Prec()

	xi, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(prec).SetInt(xi)
	frac.Sub(x, frac)

	half := NewFloat(0.5, prec)
	one := NewFloat(1, prec)

	if frac.Cmp(half) > 0 {
		frac.Sub(frac, one)
	} else if frac.Cmp(new(big.Float).Neg(half)) <= 0 {
		frac.Add(frac, one)
	}

	pi := Pi(prec)
	theta := new(big.Float).Mul(pi, frac)

	cot := Cos(theta)
	cot.Quo(cot, Sin(theta))

	return cot.Mul(cot, pi)
}
