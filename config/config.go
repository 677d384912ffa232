// Package config loads socialgraph settings from an optional YAML file,
// overlays SOCIALGRAPH_* environment variables and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SOCIALGRAPH_"

// Environments accepted by Config.Environment.
const (
	Development = "development"
	Production  = "production"
)

// AutoBound asks the iddfs command to use the graph's safe bound.
const AutoBound = -1

var (
	// ErrReadFile wraps failures to open or parse the YAML file.
	ErrReadFile = errors.New("config: read file")

	// ErrInvalidEnv wraps an environment value that does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment value")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds every knob of the socialgraph driver.
type Config struct {
	// Dataset is the path of the YAML dataset (members and groups).
	Dataset string `yaml:"dataset" validate:"required"`

	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Environment string `yaml:"environment" validate:"oneof=development production"`

	// MaxBound caps iterative deepening; AutoBound selects member count − 1.
	MaxBound int `yaml:"max_bound" validate:"gte=-1"`

	// RandomEdges random connection attempts are added after group wiring.
	RandomEdges int   `yaml:"random_edges" validate:"gte=0"`
	Seed        int64 `yaml:"seed"`

	// Metrics prints the prometheus registry after each command.
	Metrics bool `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Environment: Development,
		MaxBound:    AutoBound,
		RandomEdges: 0,
		Seed:        1,
	}
}

// Load layers defaults, the YAML file at path (skipped when path is empty)
// and environment overrides. It does not validate; callers apply their own
// overrides (flags) first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	return nil
}

// loadEnv overlays SOCIALGRAPH_* variables. lookup is os.LookupEnv outside tests.
func (c *Config) loadEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "DATASET"); ok && v != "" {
		c.Dataset = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "ENVIRONMENT"); ok && v != "" {
		c.Environment = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"MAX_BOUND", &c.MaxBound},
		{"RANDOM_EDGES", &c.RandomEdges},
	}
	for _, e := range ints {
		v, ok := lookup(EnvPrefix + e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, e.name, v)
		}
		*e.dst = n
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalidEnv, EnvPrefix, v)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "METRICS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sMETRICS=%q", ErrInvalidEnv, EnvPrefix, v)
		}
		c.Metrics = b
	}

	return nil
}
