package accuracy

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/specfun/digamma"
)

// Bounds on the scaled error of digamma.Digamma per interval of DefaultConfig.
// Reflected arguments lose up to an ulp of |x| in 1-x, which tan amplifies.
var maxError = map[string]float64{
	"reduce-up":             1e-14,
	"rational":              1e-14,
	"reduce-down":           1e-14,
	"asymptotic":            1e-14,
	"negative-small":        1e-14,
	"reflection":            1e-12,
	"reflection-asymptotic": 1e-11,
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Samples = 96
	return cfg
}

func TestRun(t *testing.T) {

	report, err := Run(testConfig(), digamma.Digamma)
	require.NoError(t, err)
	require.Len(t, report.Intervals, len(maxError))
	require.Len(t, report.Fingerprint, 64)

	for _, in := range report.Intervals {
		t.Run(in.Name, func(t *testing.T) {
			bound, ok := maxError[in.Name]
			require.True(t, ok)
			require.Equal(t, 96, in.Samples+in.Skipped)
			require.Positive(t, in.Samples)
			require.Less(t, in.MaxError, bound, "worst x=%v", in.WorstX)
			require.LessOrEqual(t, in.MeanError, in.MaxError)
			require.LessOrEqual(t, in.MedianError, in.MaxError)
			require.LessOrEqual(t, in.P99Error, in.MaxError)
			require.GreaterOrEqual(t, in.WorstX, in.A)
			require.Less(t, in.WorstX, in.B)
		})
	}

	require.Less(t, report.MaxError(), 1e-11)

	t.Run("Gonum", func(t *testing.T) {
		for _, in := range report.Intervals {
			if in.Name == "rational" {
				require.Less(t, in.MaxGonumDeviation, 1e-9)
			}
		}
	})
}

func TestRunDeterministic(t *testing.T) {

	cfg := testConfig()
	cfg.Samples = 16
	cfg.Intervals = cfg.Intervals[:2]

	r0, err := Run(cfg, digamma.Digamma)
	require.NoError(t, err)
	r1, err := Run(cfg, digamma.Digamma)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(r0, r1))

	cfg.Seed = "another seed"
	r2, err := Run(cfg, digamma.Digamma)
	require.NoError(t, err)
	require.NotEqual(t, r0.Fingerprint, r2.Fingerprint)

	t.Run("FingerprintTracksValues", func(t *testing.T) {
		cfg.Seed = DefaultConfig().Seed
		r3, err := Run(cfg, func(x float64) float64 {
			return math.Nextafter(digamma.Digamma(x), math.Inf(1))
		})
		require.NoError(t, err)
		require.NotEqual(t, r0.Fingerprint, r3.Fingerprint)
	})
}

func TestRunDetectsErrors(t *testing.T) {

	cfg := testConfig()
	cfg.Samples = 8
	cfg.Intervals = []Interval{{Name: "rational", A: 1, B: 2}}

	report, err := Run(cfg, func(x float64) float64 {
		return digamma.Digamma(x) + 1e-6
	})
	require.NoError(t, err)
	require.InDelta(t, 1e-6, report.MaxError(), 1e-12)

	report, err = Run(cfg, func(x float64) float64 { return math.NaN() })
	require.NoError(t, err)
	require.True(t, math.IsNaN(report.Intervals[0].MaxError))
}

func TestNearPole(t *testing.T) {
	require.True(t, nearPole(0, 0))
	require.True(t, nearPole(-3.01, 0.02))
	require.True(t, nearPole(-2.99, 0.02))
	require.True(t, nearPole(-0.01, 0.02))
	require.False(t, nearPole(0.01, 0.02))
	require.False(t, nearPole(1e-300, 0.02))
	require.False(t, nearPole(-3.5, 0.02))
	require.False(t, nearPole(3, 0.02))
	require.False(t, nearPole(1.001, 0.02))

	t.Run("SkipsAll", func(t *testing.T) {
		require.True(t, Interval{A: -0.005, B: 0}.skipsAll(0.01))
		require.True(t, Interval{A: -3.005, B: -2.995}.skipsAll(0.01))
		require.False(t, Interval{A: -3.005, B: -2.9}.skipsAll(0.01))
		require.False(t, Interval{A: -1, B: 0}.skipsAll(0.01))
		require.False(t, Interval{A: 1e-300, B: 1e-6}.skipsAll(0.01))
		require.False(t, Interval{A: -3, B: -2.5}.skipsAll(0))
	})
}

func TestRunNearZero(t *testing.T) {

	cfg := testConfig()
	cfg.Samples = 64
	cfg.PoleMargin = 0.01
	cfg.Intervals = []Interval{{Name: "near-zero", A: 1e-300, B: 1e-6}}

	report, err := Run(cfg, digamma.Digamma)
	require.NoError(t, err)

	in := report.Intervals[0]
	require.Equal(t, 64, in.Samples)
	require.Zero(t, in.Skipped)
	require.Less(t, in.MaxError, 1e-15, "worst x=%v", in.WorstX)
}

func TestConfig(t *testing.T) {

	t.Run("Default", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("Invalid", func(t *testing.T) {
		for name, mutate := range map[string]func(cfg *Config){
			"Samples":      func(cfg *Config) { cfg.Samples = 0 },
			"Precision":    func(cfg *Config) { cfg.Precision = 32 },
			"PoleMargin":   func(cfg *Config) { cfg.PoleMargin = 0.5 },
			"NoIntervals":  func(cfg *Config) { cfg.Intervals = nil },
			"EmptyName":    func(cfg *Config) { cfg.Intervals[0].Name = " " },
			"Duplicate":    func(cfg *Config) { cfg.Intervals[1].Name = cfg.Intervals[0].Name },
			"Empty":        func(cfg *Config) { cfg.Intervals[0].B = cfg.Intervals[0].A },
			"NotFinite":    func(cfg *Config) { cfg.Intervals[0].B = math.Inf(1) },
			"NaNEndpoints": func(cfg *Config) { cfg.Intervals[0].A = math.NaN() },
			"AllSkipped":   func(cfg *Config) { cfg.Intervals[0] = Interval{Name: "pole", A: -2.01, B: -1.995} },
		} {
			t.Run(name, func(t *testing.T) {
				cfg := DefaultConfig()
				mutate(&cfg)
				require.Error(t, cfg.Validate())
				_, err := Run(cfg, digamma.Digamma)
				require.Error(t, err)
			})
		}
	})

	t.Run("Load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sweep.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
seed = "nightly"
samples = 4096

[[intervals]]
name = "tiny"
a = 0.0001
b = 0.001

[[intervals]]
name = "poles"
a = -20.0
b = -10.0
`), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		want := DefaultConfig()
		want.Seed = "nightly"
		want.Samples = 4096
		want.Intervals = []Interval{
			{Name: "tiny", A: 0.0001, B: 0.001},
			{Name: "poles", A: -20, B: -10},
		}

		require.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("LoadDefaultsIntervals", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sweep.toml")
		require.NoError(t, os.WriteFile(path, []byte("precision = 256\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		want := DefaultConfig()
		want.Precision = 256
		require.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("LoadErrors", func(t *testing.T) {
		dir := t.TempDir()

		_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
		require.Error(t, err)

		unknown := filepath.Join(dir, "unknown.toml")
		require.NoError(t, os.WriteFile(unknown, []byte("sample = 3\n"), 0o600))
		_, err = LoadConfig(unknown)
		require.ErrorContains(t, err, "unknown keys")

		invalid := filepath.Join(dir, "invalid.toml")
		require.NoError(t, os.WriteFile(invalid, []byte("samples = -1\n"), 0o600))
		_, err = LoadConfig(invalid)
		require.ErrorContains(t, err, "samples must be positive")
	})
}
