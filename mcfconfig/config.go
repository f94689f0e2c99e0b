// Package mcfconfig loads the solver's kernel tuning knobs through a
// layered koanf configuration: defaults, then an optional YAML file, then
// environment variables, in that priority order.
//
// Scoped to just the knobs the reference implementation exposes as
// compile-time constants or constructor parameters.
package mcfconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "MICADO_"
	configEnvVar = "MICADO_CONFIG_PATH"
)

// SolverConfig collects the kernel's runtime-configurable knobs. Field names
// mirror the reference's own identifiers where one exists, so that
// DESIGN.md's grounding stays legible against src/MgCS2/CS2.h.
type SolverConfig struct {
	// FlowType / CostType select the numeric domain Policy treats flow and
	// cost values as ("integer" or "real"), mirroring the reference's
	// FNumber/CNumber typedef choice. Unlike the reference, which fixes
	// this at compile time via a macro, a solver instance fixes it at
	// construction time from this config. "real" is presently rejected by
	// Validate: the epsilon-scaling outer loop in Solve terminates at
	// epsilon==1 and relies on integral costs for that to coincide with
	// exact optimality, so a genuinely real-valued cost domain needs a
	// different termination scheme this kernel doesn't implement.
	FlowType string `koanf:"flow_type"`
	CostType string `koanf:"cost_type"`

	// EpsFlowEnabled / EpsCostEnabled toggle epsilon-tolerant comparisons
	// for flow and cost values respectively (EPS_FLOW / EPS_COST). This is
	// independent of FlowType/CostType, matching the reference's
	// EPS_FLOW/EPS_COST macros being distinct from the FNumber/CNumber
	// typedefs themselves.
	EpsFlowEnabled bool `koanf:"eps_flow_enabled"`
	EpsCostEnabled bool `koanf:"eps_cost_enabled"`

	// NameBase selects whether externally-visible node ids start at 0 or 1
	// (USENAME0). Internal indexing is always 0-based.
	NameBase int `koanf:"name_base"`

	// CutOffFactor / CutOnGap parameterize the admissible-network boundary:
	// cut_off = CutOffFactor * epsilon, cut_on = cut_off * CutOnGap.
	CutOffFactor float64 `koanf:"cut_off_factor"`
	CutOnGap     float64 `koanf:"cut_on_gap"`

	// EpsilonFactor is the divisor update_epsilon applies each outer-loop
	// iteration (the reference uses 8 or 12).
	EpsilonFactor float64 `koanf:"epsilon_factor"`

	// PriceRefinePeriod / PriceInPeriod are loaded but not read by the
	// kernel: refine checks whether a phase can be skipped (price_refine)
	// in every phase, and there is no separate price_in pass.
	PriceRefinePeriod int `koanf:"price_refine_period"`
	PriceInPeriod     int `koanf:"price_in_period"`

	// BadRelabelLimit is the number of relabels within one refine phase
	// after which the kernel runs another price_update; 0 disables these
	// extra updates. BadPriceinLimit is loaded but not read by the kernel.
	BadRelabelLimit int `koanf:"bad_relabel_limit"`
	BadPriceinLimit int `koanf:"bad_pricein_limit"`

	// Balanced names the reference's Blncd switch between a FIFO (false)
	// and a balanced excess-queue discipline (true). It is loaded but not
	// read by the kernel, whose excess queue is always FIFO.
	Balanced bool `koanf:"balanced"`

	// TimeOn enables the CPU timer (set_time_on).
	TimeOn bool `koanf:"time_on"`
}

// Default returns the reference's own operating point.
func Default() SolverConfig {
	return SolverConfig{
		FlowType:          "integer",
		CostType:          "integer",
		EpsFlowEnabled:    true,
		EpsCostEnabled:    true,
		NameBase:          1,
		CutOffFactor:      1.0,
		CutOnGap:          1.5,
		EpsilonFactor:     8,
		PriceRefinePeriod: 4,
		PriceInPeriod:     4,
		BadRelabelLimit:   3,
		BadPriceinLimit:   3,
		Balanced:          false,
		TimeOn:            false,
	}
}

// Loader loads a SolverConfig from defaults, an optional YAML file, and
// environment variables prefixed MICADO_ (e.g. MICADO_EPSILON_FACTOR=12).
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// Option configures a Loader.
type Option func(*Loader)

// WithConfigPaths overrides the default search paths for the YAML config
// file.
func WithConfigPaths(paths ...string) Option {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvPrefix overrides the default MICADO_ environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader builds a Loader with the given options applied over the
// defaults.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"micado.yaml", "config/micado.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves a SolverConfig: defaults, then file (if found), then env
// (highest priority).
func (l *Loader) Load() (SolverConfig, error) {
	d := Default()
	defaults := map[string]any{
		"flow_type":           d.FlowType,
		"cost_type":           d.CostType,
		"eps_flow_enabled":    d.EpsFlowEnabled,
		"eps_cost_enabled":    d.EpsCostEnabled,
		"name_base":           d.NameBase,
		"cut_off_factor":      d.CutOffFactor,
		"cut_on_gap":          d.CutOnGap,
		"epsilon_factor":      d.EpsilonFactor,
		"price_refine_period": d.PriceRefinePeriod,
		"price_in_period":     d.PriceInPeriod,
		"bad_relabel_limit":   d.BadRelabelLimit,
		"bad_pricein_limit":   d.BadPriceinLimit,
		"balanced":            d.Balanced,
		"time_on":             d.TimeOn,
	}
	if err := l.k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return SolverConfig{}, fmt.Errorf("load defaults: %w", err)
	}

	// A missing file is not fatal; env/defaults may be sufficient.
	_ = l.loadConfigFile()

	if err := l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	}), nil); err != nil {
		return SolverConfig{}, fmt.Errorf("load env: %w", err)
	}

	var cfg SolverConfig
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return SolverConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SolverConfig{}, err
	}
	return cfg, nil
}

func (l *Loader) loadConfigFile() error {
	if path := os.Getenv(configEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return l.k.Load(file.Provider(path), yaml.Parser())
		}
	}
	for _, path := range l.configPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return l.k.Load(file.Provider(abs), yaml.Parser())
		}
	}
	return fmt.Errorf("config file not found in paths: %v", l.configPaths)
}

// Validate rejects configurations the kernel cannot run with.
func (c SolverConfig) Validate() error {
	if c.FlowType != "integer" && c.FlowType != "real" {
		return fmt.Errorf("mcfconfig: flow_type must be \"integer\" or \"real\", got %q", c.FlowType)
	}
	if c.CostType != "integer" && c.CostType != "real" {
		return fmt.Errorf("mcfconfig: cost_type must be \"integer\" or \"real\", got %q", c.CostType)
	}
	if c.FlowType == "real" {
		return fmt.Errorf("mcfconfig: flow_type \"real\" is not supported: the epsilon-scaling kernel requires integral flow")
	}
	if c.CostType == "real" {
		return fmt.Errorf("mcfconfig: cost_type \"real\" is not supported: the epsilon-scaling kernel terminates at epsilon==1 and relies on integral costs to be exact there")
	}
	if c.NameBase != 0 && c.NameBase != 1 {
		return fmt.Errorf("mcfconfig: name_base must be 0 or 1, got %d", c.NameBase)
	}
	if c.EpsilonFactor <= 1 {
		return fmt.Errorf("mcfconfig: epsilon_factor must be > 1, got %v", c.EpsilonFactor)
	}
	if c.CutOffFactor <= 0 {
		return fmt.Errorf("mcfconfig: cut_off_factor must be > 0, got %v", c.CutOffFactor)
	}
	if c.CutOnGap <= 0 {
		return fmt.Errorf("mcfconfig: cut_on_gap must be > 0, got %v", c.CutOnGap)
	}
	return nil
}

// Load is a convenience entry point equivalent to NewLoader().Load().
func Load() (SolverConfig, error) {
	return NewLoader().Load()
}
