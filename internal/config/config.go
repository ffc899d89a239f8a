// Package config defines the data structures related to application
// configuration and includes functions for loading and validating it.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mbaillet/immosim/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for immosim.
type Configuration struct {
	Engine     EngineConfig     `yaml:"engine,omitempty"`
	Locale     string           `yaml:"locale,omitempty"`
	Thresholds ThresholdsConfig `yaml:"thresholds,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// EngineConfig locates the external calculation engine.
type EngineConfig struct {
	URL            string `yaml:"url,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}

// ThresholdsConfig overrides the classification cut points (fractions).
type ThresholdsConfig struct {
	RiskFree float64 `yaml:"riskFree,omitempty"`
	Discount float64 `yaml:"discount,omitempty"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json
}

// LoadConfiguration loads the YAML configuration at configPath. An empty
// path yields defaults. The IMMOSIM_ENGINE_URL environment variable
// overrides the configured engine URL either way.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := Configuration{}

	if configPath != "" {
		v := viper.New()
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		v.AutomaticEnv()

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
		if err := v.Unmarshal(&configuration); err != nil {
			return nil, fmt.Errorf("unable to decode into struct, %s", err)
		}
	}

	configuration.applyDefaults()

	if envURL := os.Getenv(constants.EngineURLEnvVar); envURL != "" {
		configuration.Engine.URL = envURL
	}

	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if c.Engine.URL == "" {
		c.Engine.URL = constants.DefaultEngineURL
	}
	if c.Engine.TimeoutSeconds <= 0 {
		c.Engine.TimeoutSeconds = 15
	}
	if c.Locale == "" {
		c.Locale = "fr"
	}
	if c.Thresholds.RiskFree == 0 {
		c.Thresholds.RiskFree = constants.DefaultRiskFreeRate
	}
	if c.Thresholds.Discount == 0 {
		c.Thresholds.Discount = constants.DefaultDiscountRate
	}
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
}

// ValidateConfiguration performs general validation and returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	locale := strings.ToLower(c.Locale)
	if locale != "fr" && locale != "en" {
		warnings = append(warnings, fmt.Sprintf("unsupported locale %q; falling back to fr", c.Locale))
	}
	if c.Thresholds.RiskFree >= c.Thresholds.Discount {
		warnings = append(warnings, fmt.Sprintf(
			"risk-free rate %.4f is not below the discount rate %.4f; classification buckets will collapse",
			c.Thresholds.RiskFree, c.Thresholds.Discount))
	}
	if c.Thresholds.RiskFree > 1 || c.Thresholds.Discount > 1 {
		warnings = append(warnings, "thresholds look like percents; they must be fractions (0.035, not 3.5)")
	}
	if !strings.HasPrefix(c.Engine.URL, "http://") && !strings.HasPrefix(c.Engine.URL, "https://") {
		warnings = append(warnings, fmt.Sprintf("engine URL %q has no http(s) scheme", c.Engine.URL))
	}

	return warnings
}
