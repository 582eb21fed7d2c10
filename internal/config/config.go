// Package config loads planner tuning parameters from a YAML file via
// spf13/viper, following the FromYaml pattern the rest of the example
// pack uses for algorithm configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/paiv/icfpc2012/internal/planner"
)

const (
	defaultTimeout   = 150 * time.Second
	timeoutSafety    = 500 * time.Millisecond
	defaultPoolCap   = 200000
	defaultMemoCap   = 200000
	defaultRetries   = 1
	defaultMonitor   = ":8089"
	timeoutEnvVar    = "PAIV_TIMEOUT"
	heuristicVariant = "variance"
)

// outerConfig mirrors the {kind, def} envelope viper config files in the
// pack use, letting a single file name its strategy before viper
// unmarshals the strategy-specific body.
type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// PlannerConfig holds every tunable the outer drivers need, loaded from
// a YAML document shaped like:
//
//	kind: uct
//	def:
//	  poolCap: 200000
//	  memoCap: 200000
//	  retries: 2
//	  heuristic: variance
//	  monitorAddr: ":8089"
type PlannerConfig struct {
	PoolCap     int    `mapstructure:"poolCap" yaml:"poolCap"`
	MemoCap     int    `mapstructure:"memoCap" yaml:"memoCap"`
	Retries     int    `mapstructure:"retries" yaml:"retries"`
	HeuristicName string `mapstructure:"heuristic" yaml:"heuristic"`
	MonitorAddr string `mapstructure:"monitorAddr" yaml:"monitorAddr"`
}

// Default returns a PlannerConfig pre-populated with the BFS driver's
// defaults, used whenever no YAML file is given.
func Default() PlannerConfig {
	return PlannerConfig{
		PoolCap: defaultPoolCap,
		MemoCap: defaultMemoCap,
		Retries: defaultRetries,
	}
}

// FromYaml loads a PlannerConfig plus its selected Strategy from path,
// grounded on the FromYaml helper in the example pack's reinforcement
// package: viper reads the outer {kind, def} envelope, then the def
// sub-document is re-marshaled and unmarshaled into PlannerConfig so
// strategy-specific shapes can evolve independently of the envelope.
func FromYaml(path string) (planner.Strategy, PlannerConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return "", PlannerConfig{}, errors.WithMessage(err, "reading planner config")
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return "", PlannerConfig{}, errors.WithStack(err)
	}

	body, err := yaml.Marshal(outer.Def)
	if err != nil {
		return "", PlannerConfig{}, errors.WithStack(err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(body, &cfg); err != nil {
		return "", PlannerConfig{}, errors.WithStack(err)
	}

	return planner.Strategy(outer.Kind), cfg, nil
}

// Heuristic maps the config's heuristic name to a planner.Heuristic,
// defaulting to planner.HeuristicDefault for any unrecognized value.
func (c PlannerConfig) Heuristic() planner.Heuristic {
	if c.HeuristicName == heuristicVariant {
		return planner.HeuristicVariance
	}
	return planner.HeuristicDefault
}

// ToPlannerConfig builds the planner.Config Run expects.
func (c PlannerConfig) ToPlannerConfig(strategy planner.Strategy) planner.Config {
	return planner.Config{
		Strategy:  strategy,
		PoolCap:   c.PoolCap,
		MemoCap:   c.MemoCap,
		Retries:   c.Retries,
		Heuristic: c.Heuristic(),
	}
}

// Budget reads PAIV_TIMEOUT from the environment (seconds, float
// accepted), falling back to defaultTimeout, and reserves
// timeoutSafety for flushing the final program to stdout before the
// grader's own clock runs out — matching the original lifter's
// env-var contract.
func Budget() time.Duration {
	total := defaultTimeout
	if s := os.Getenv(timeoutEnvVar); s != "" {
		if d, err := time.ParseDuration(s + "s"); err == nil && d > 0 {
			total = d
		}
	}
	if total <= timeoutSafety {
		return total
	}
	return total - timeoutSafety
}
