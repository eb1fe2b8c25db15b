package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i].
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	if len(poly) == 0 {
		return new(big.Float).SetPrec(x.Prec())
	}

	n := len(poly) - 1
	y = new(big.Float).Set(poly[n])
	for i := n - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}
	return
}
