/*
Package specfun is Tune Insight's collection of special-function kernels for float64 arithmetic.
It provides a pure Go implementation of the digamma function (package digamma) accurate to near machine
precision over the whole real line, together with the arbitrary-precision reference implementation
(utils/bignum) and the deterministic accuracy sweeps (utils/accuracy) used to validate it.
*/
package specfun
