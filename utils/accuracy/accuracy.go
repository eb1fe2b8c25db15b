// Package accuracy measures the error of a float64 digamma implementation against
// the arbitrary-precision reference of package bignum over deterministic samples.
package accuracy

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/zeebo/blake3"
	"gonum.org/v1/gonum/mathext"

	"github.com/tuneinsight/specfun/utils/bignum"
	"github.com/tuneinsight/specfun/utils/sampling"
)

// IntervalReport summarizes the error measured over one interval.
//
// Errors are scaled: |f(x) - ψ(x)| / max(1, |ψ(x)|), which is the absolute
// error where |ψ| <= 1 and the relative error elsewhere.
type IntervalReport struct {
	Interval
	Samples int
	Skipped int

	MaxError    float64
	MeanError   float64
	MedianError float64
	StdDevError float64
	P99Error    float64

	// WorstX is the argument of MaxError.
	WorstX float64

	// MaxGonumDeviation is the largest scaled difference between the reference
	// and gonum's mathext.Digamma, for comparison.
	MaxGonumDeviation float64
}

// Report is the result of a sweep.
type Report struct {
	Intervals []IntervalReport

	// Fingerprint is the hex blake3 digest of every sampled (x, f(x)) pair.
	Fingerprint string
}

// MaxError returns the largest scaled error over all intervals.
func (r Report) MaxError() (max float64) {
	for _, in := range r.Intervals {
		max = math.Max(max, in.MaxError)
	}
	return
}

// Run evaluates f on the samples described by cfg and compares it against
// bignum.Digamma.
func Run(cfg Config, f func(x float64) float64) (report Report, err error) {

	if err = cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("cannot Run: %w", err)
	}

	hasher := blake3.New()
	report.Intervals = make([]IntervalReport, len(cfg.Intervals))

	for i, in := range cfg.Intervals {
		if report.Intervals[i], err = runInterval(cfg, in, f, hasher); err != nil {
			return Report{}, fmt.Errorf("cannot Run: interval %q: %w", in.Name, err)
		}
	}

	report.Fingerprint = hex.EncodeToString(hasher.Sum(nil))

	return
}

func runInterval(cfg Config, in Interval, f func(x float64) float64, hasher *blake3.Hasher) (r IntervalReport, err error) {

	prng, err := sampling.NewKeyedPRNG(intervalKey(cfg.Seed, in.Name))
	if err != nil {
		return r, err
	}

	sampler, err := sampling.NewUniformSampler(prng, in.A, in.B)
	if err != nil {
		return r, err
	}

	r.Interval = in

	errs := make([]float64, 0, cfg.Samples)
	var buff [16]byte

	for _, x := range sampler.Read(cfg.Samples) {

		if nearPole(x, cfg.PoleMargin) {
			r.Skipped++
			continue
		}

		y := f(x)

		binary.LittleEndian.PutUint64(buff[:8], math.Float64bits(x))
		binary.LittleEndian.PutUint64(buff[8:], math.Float64bits(y))
		hasher.Write(buff[:])

		ref, err := reference(x, cfg.Precision)
		if err != nil {
			return r, fmt.Errorf("reference at x=%v: %w", x, err)
		}

		e := scaledError(y, ref)
		errs = append(errs, e)

		if e > r.MaxError || math.IsNaN(e) {
			r.MaxError = e
			r.WorstX = x
		}

		r.MaxGonumDeviation = math.Max(r.MaxGonumDeviation, scaledError(mathext.Digamma(x), ref))
	}

	r.Samples = len(errs)

	if r.Samples == 0 {
		return r, nil
	}

	if r.MeanError, err = stats.Mean(errs); err != nil {
		return
	}

	if r.MedianError, err = stats.Median(errs); err != nil {
		return
	}

	if r.StdDevError, err = stats.StandardDeviation(errs); err != nil {
		return
	}

	// Percentile is undefined on a single value.
	if r.Samples == 1 {
		r.P99Error = r.MaxError
		return r, nil
	}

	if r.P99Error, err = stats.Percentile(errs, 99); err != nil {
		return
	}

	return r, nil
}

func reference(x float64, prec uint) (float64, error) {
	y, err := bignum.Digamma(new(big.Float).SetPrec(prec).SetFloat64(x))
	if err != nil {
		return 0, err
	}
	ref, _ := y.Float64()
	return ref, nil
}

func scaledError(y, ref float64) float64 {
	return math.Abs(y-ref) / math.Max(1, math.Abs(ref))
}

// nearPole reports whether x <= 0 is within margin of a non-positive integer.
// Positive arguments are never skipped: ψ(x) ~ -1/x is well conditioned there.
func nearPole(x, margin float64) bool {
	if x > 0 {
		return false
	}
	return math.Abs(x-math.Round(x)) <= margin
}

// skipsAll reports whether every point of [in.A, in.B) is skipped by nearPole.
func (in Interval) skipsAll(margin float64) bool {
	if in.B > 0 {
		return false
	}
	n := math.Round(in.A)
	return math.Abs(in.A-n) <= margin && in.B <= n+margin
}

func intervalKey(seed, name string) []byte {
	key := blake3.Sum256([]byte(seed + "/" + name))
	return key[:]
}
