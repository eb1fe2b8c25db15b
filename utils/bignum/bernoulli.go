package bignum

import (
	"math/big"
)

// Bernoulli returns the Bernoulli numbers B_0, ..., B_n computed exactly with
// the Akiyama-Tanigawa algorithm. The convention B_1 = +1/2 is used.
func Bernoulli(n int) (b []*big.Rat) {

	if n < 0 {
		return nil
	}

	b = make([]*big.Rat, n+1)
	a := make([]*big.Rat, n+1)
	tmp := new(big.Rat)

	for m := 0; m <= n; m++ {
		a[m] = big.NewRat(1, int64(m+1))
		for j := m; j > 0; j-- {
			// a[j-1] = j * (a[j-1] - a[j])
			tmp.Sub(a[j-1], a[j])
			a[j-1].Mul(tmp, big.NewRat(int64(j), 1))
		}
		b[m] = new(big.Rat).Set(a[0])
	}

	return
}
