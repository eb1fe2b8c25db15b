package digamma

// reduce shifts x in (-1, 10) into [1, 2] with the recurrence
// ψ(x+1) = ψ(x) + 1/x and returns the shifted argument together with
// tmp plus the accumulated correction, so that ψ(x) = tmp + ψ(xr).
// The loops run at most nine times.
func reduce(x, tmp float64) (xr, acc float64) {

	for x > 2 {
		x -= 1
		tmp += 1 / x
	}

	for x < 1 {
		tmp -= 1 / x
		x += 1
	}

	return x, tmp
}
