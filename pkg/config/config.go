// Package config loads scan settings from flags, environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/report"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g. HOTPLUG_SCAN_MANAGEMENT_NAMESPACE
	EnvPrefix = "HOTPLUG_SCAN"

	DefaultBlockNamespace   = "longhorn-system"
	DefaultDriver           = "driver.harvesterhci.io"
	DefaultConcurrency      = 8
	DefaultProbeConcurrency = 4
	DefaultEventLookback    = time.Hour
	DefaultTimeout          = 5 * time.Minute
)

// ErrInvalidConfig marks configuration that cannot be used for a scan
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all scan settings. Keys match the command-line flag names.
type Config struct {
	Kubeconfig          string        `mapstructure:"kubeconfig"`
	DownstreamContext   string        `mapstructure:"downstream-context"`
	ManagementContext   string        `mapstructure:"management-context"`
	ManagementNamespace string        `mapstructure:"management-namespace"`
	BlockNamespace      string        `mapstructure:"block-namespace"`
	Driver              string        `mapstructure:"driver"`
	VMSelector          string        `mapstructure:"vm-selector"`
	Concurrency         int           `mapstructure:"concurrency"`
	ProbeConcurrency    int           `mapstructure:"probe-concurrency"`
	Events              bool          `mapstructure:"events"`
	EventLookback       time.Duration `mapstructure:"event-lookback"`
	Timeout             time.Duration `mapstructure:"timeout"`
	Verbose             bool          `mapstructure:"verbose"`
	LogFile             string        `mapstructure:"log-file"`
	Output              string        `mapstructure:"output"`
	MinSeverity         string        `mapstructure:"min-severity"`
	MetricsFile         string        `mapstructure:"metrics-file"`
}

// Load merges defaults, an optional config file, HOTPLUG_SCAN_* environment variables and
// flags that were set explicitly, in increasing order of precedence. flags may be nil.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("block-namespace", DefaultBlockNamespace)
	v.SetDefault("driver", DefaultDriver)
	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("probe-concurrency", DefaultProbeConcurrency)
	v.SetDefault("event-lookback", DefaultEventLookback)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("output", report.FormatText)
}

// Validate checks for settings a scan cannot run with
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"downstream-context", c.DownstreamContext},
		{"management-context", c.ManagementContext},
		{"management-namespace", c.ManagementNamespace},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, r.field)
		}
	}

	if !contains(report.Formats, c.Output) {
		return invalidOption("output format", c.Output, report.Formats)
	}

	if c.MinSeverity != "" {
		if _, err := ParseSeverity(c.MinSeverity); err != nil {
			return err
		}
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfig, c.Concurrency)
	}
	if c.ProbeConcurrency < 1 {
		return fmt.Errorf("%w: probe-concurrency must be at least 1, got %d", ErrInvalidConfig, c.ProbeConcurrency)
	}
	if c.Timeout < 0 || c.EventLookback < 0 {
		return fmt.Errorf("%w: timeout and event-lookback must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ScanOptions validates the configuration and converts it to scan options
func (c *Config) ScanOptions() (types.ScanOptions, error) {
	if err := c.Validate(); err != nil {
		return types.ScanOptions{}, err
	}

	var minSeverity types.Severity
	if c.MinSeverity != "" {
		minSeverity, _ = ParseSeverity(c.MinSeverity)
	}

	return types.ScanOptions{
		DownstreamContext:    c.DownstreamContext,
		ManagementContext:    c.ManagementContext,
		ManagementNamespace:  c.ManagementNamespace,
		BlockVolumeNamespace: c.BlockNamespace,
		Driver:               c.Driver,
		VMLabelSelector:      c.VMSelector,
		Concurrency:          c.Concurrency,
		ProbeConcurrency:     c.ProbeConcurrency,
		IncludeEvents:        c.Events,
		EventLookback:        c.EventLookback,
		Timeout:              c.Timeout,
		Verbose:              c.Verbose,
		LogFile:              c.LogFile,
		OutputFormat:         c.Output,
		MinSeverity:          minSeverity,
		MetricsFile:          c.MetricsFile,
	}, nil
}

// ParseSeverity parses a case-insensitive severity name
func ParseSeverity(s string) (types.Severity, error) {
	severity := types.Severity(strings.ToUpper(strings.TrimSpace(s)))
	if severity.Rank() == 0 {
		return "", invalidOption("severity level", s, []string{"info", "warning", "critical"})
	}
	return severity, nil
}

// invalidOption creates a consistent validation error message
func invalidOption(field, value string, validOptions []string) error {
	return fmt.Errorf("%w: invalid %s '%s' - must be one of: %s", ErrInvalidConfig, field, value, strings.Join(validOptions, ", "))
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
