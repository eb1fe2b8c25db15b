package accuracy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

// Interval is a named sampling interval [A, B).
type Interval struct {
	Name string  `toml:"name"`
	A    float64 `toml:"a"`
	B    float64 `toml:"b"`
}

// Config parameterizes an accuracy sweep.
//
// Seed keys the sample streams, each interval is sampled with its own
// stream so that adding an interval does not change the others.
// Non-positive points closer than PoleMargin to an integer are skipped, and an
// interval whose points would all be skipped is rejected.
// Precision is the number of bits of the reference evaluation.
type Config struct {
	Seed       string     `toml:"seed"`
	Samples    int        `toml:"samples"`
	Precision  uint       `toml:"precision"`
	PoleMargin float64    `toml:"pole_margin"`
	Intervals  []Interval `toml:"intervals"`
}

// DefaultConfig returns the sweep covering every evaluation regime of the
// digamma kernel.
func DefaultConfig() Config {
	return Config{
		Seed:       "specfun/digamma",
		Samples:    1024,
		Precision:  192,
		PoleMargin: 1.0 / 64,
		Intervals: []Interval{
			{Name: "reduce-up", A: 1.0 / 1024, B: 1},
			{Name: "rational", A: 1, B: 2},
			{Name: "reduce-down", A: 2, B: 10},
			{Name: "asymptotic", A: 10, B: 1e6},
			{Name: "negative-small", A: -1, B: 0},
			{Name: "reflection", A: -10, B: -1},
			{Name: "reflection-asymptotic", A: -1e3, B: -10},
		},
	}
}

// LoadConfig reads a TOML sweep configuration. Fields absent from the
// file keep the value of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Intervals = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	if cfg.Intervals == nil {
		cfg.Intervals = DefaultConfig().Intervals
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a runnable sweep.
func (cfg Config) Validate() error {
	if cfg.Samples <= 0 {
		return fmt.Errorf("samples must be positive but is %d", cfg.Samples)
	}
	if cfg.Precision < 64 {
		return fmt.Errorf("precision must be at least 64 bits but is %d", cfg.Precision)
	}
	if cfg.PoleMargin < 0 || cfg.PoleMargin >= 0.5 || math.IsNaN(cfg.PoleMargin) {
		return fmt.Errorf("pole_margin must be in [0, 0.5) but is %v", cfg.PoleMargin)
	}
	if len(cfg.Intervals) == 0 {
		return errors.New("at least one interval is required")
	}
	names := map[string]bool{}
	for i, in := range cfg.Intervals {
		if strings.TrimSpace(in.Name) == "" {
			return fmt.Errorf("interval[%d] missing name", i)
		}
		if names[in.Name] {
			return fmt.Errorf("interval[%d] duplicate name %q", i, in.Name)
		}
		names[in.Name] = true
		if math.IsNaN(in.A) || math.IsNaN(in.B) || math.IsInf(in.A, 0) || math.IsInf(in.B, 0) || !(in.A < in.B) {
			return fmt.Errorf("interval[%d] %q: [%v, %v) is not a finite non-empty interval", i, in.Name, in.A, in.B)
		}
		if in.skipsAll(cfg.PoleMargin) {
			return fmt.Errorf("interval[%d] %q: [%v, %v) lies within pole_margin %v of a pole", i, in.Name, in.A, in.B, cfg.PoleMargin)
		}
	}
	return nil
}
