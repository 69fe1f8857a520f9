// Package commands implements the permctl CLI command handlers.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SafetyConfig mirrors analysis.Config's bounds for override via a
// config file or PERMCTL_-prefixed environment variables; the command
// handlers pass its values to analysis.NewConfig through the With*
// options, keeping the CLI a thin consumer of the core, per
// SPEC_FULL.md's C10 charter.
type SafetyConfig struct {
	DerivedSeriesDepth int `mapstructure:"derived_series_depth"`
	LowerCentralDepth  int `mapstructure:"lower_central_depth"`
	SylowTrialBudget   int `mapstructure:"sylow_trial_budget"`
	SylowRestartBudget int `mapstructure:"sylow_restart_budget"`
	QuotientIndexBound int `mapstructure:"quotient_index_bound"`
}

// LoadSafetyConfig reads bounds overrides from configPath (if given),
// a "permctl.yaml" discovered on the default search path otherwise,
// and PERMCTL_-prefixed environment variables, layered over the same
// defaults analysis.DefaultConfig documents.
func LoadSafetyConfig(configPath string) (*SafetyConfig, error) {
	v := viper.New()
	v.SetDefault("derived_series_depth", 64)
	v.SetDefault("lower_central_depth", 64)
	v.SetDefault("sylow_trial_budget", 200)
	v.SetDefault("sylow_restart_budget", 8)
	v.SetDefault("quotient_index_bound", 1_000_000)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("permctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/permctl")
	}

	v.SetEnvPrefix("PERMCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("permctl: read config: %w", err)
		}
	}

	var cfg SafetyConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("permctl: unmarshal config: %w", err)
	}
	return &cfg, nil
}
