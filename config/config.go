// Package config resolves run settings from flags, environment variables
// and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/weiihann/ferriself/bench"
)

const (
	// EnvPrefix namespaces every setting in the environment,
	// e.g. FERRIS_ELF_WARMUP.
	EnvPrefix = "FERRIS_ELF"
	// InputEnv is the unprefixed variable the input path is also read from.
	InputEnv = "INPUT"

	KeyInput    = "input"
	KeySolution = "solution"
	KeyWarmup   = "warmup"
	KeyCPU      = "cpu"
	KeyJSON     = "json"
	KeyMetrics  = "metrics"
	KeyLogLevel = "log-level"
)

// ErrInvalid is returned when resolved settings cannot drive a run.
var ErrInvalid = errors.New("invalid config")

// Config holds the resolved settings of a benchmark run.
type Config struct {
	Input       string        `mapstructure:"input"`
	Solution    string        `mapstructure:"solution"`
	Warmup      time.Duration `mapstructure:"warmup"`
	CPU         int           `mapstructure:"cpu"`
	JSONPath    string        `mapstructure:"json"`
	MetricsPath string        `mapstructure:"metrics"`
	LogLevel    string        `mapstructure:"log-level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Warmup:   bench.DefaultWarmup,
		CPU:      -1,
		LogLevel: "info",
	}
}

// New returns a viper instance with defaults and environment bindings in
// place. Flags are bound separately with BindFlags.
func New() *viper.Viper {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyInput, defaults.Input)
	v.SetDefault(KeySolution, defaults.Solution)
	v.SetDefault(KeyWarmup, defaults.Warmup)
	v.SetDefault(KeyCPU, defaults.CPU)
	v.SetDefault(KeyJSON, defaults.JSONPath)
	v.SetDefault(KeyMetrics, defaults.MetricsPath)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// INPUT wins over FERRIS_ELF_INPUT, matching the runner containers.
	_ = v.BindEnv(KeyInput, InputEnv, EnvPrefix+"_INPUT")

	return v
}

// BindFlags binds every flag in fs that names a known setting.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{
		KeyInput, KeySolution, KeyWarmup, KeyCPU, KeyJSON, KeyMetrics, KeyLogLevel,
	} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	return nil
}

// Load reads configFile when set, then resolves and validates the settings.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first setting that cannot drive a run.
func (c Config) Validate() error {
	switch {
	case c.Solution == "":
		return fmt.Errorf("%w: no solution selected", ErrInvalid)
	case c.Input == "":
		return fmt.Errorf("%w: no input path (set --input or %s)", ErrInvalid, InputEnv)
	case c.Warmup <= 0:
		return fmt.Errorf("%w: warmup must be positive, got %s", ErrInvalid, c.Warmup)
	case c.CPU < -1:
		return fmt.Errorf("%w: cpu must be -1 (unpinned) or a core index, got %d", ErrInvalid, c.CPU)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}

	return level, nil
}

// Bench returns the harness configuration for these settings.
func (c Config) Bench(logger *slog.Logger) bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Warmup = c.Warmup
	cfg.CPU = c.CPU
	cfg.Logger = logger

	return cfg
}
