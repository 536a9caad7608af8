package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "reswgen.yaml"

const envPrefix = "RESWGEN_"

// ErrInvalidConfig is returned for settings that cannot be used together.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds generator settings.
type Config struct {
	// Version of the config schema.
	Version string `yaml:"version,omitempty"`
	// Namespace is the default namespace of the resource files.
	Namespace string `yaml:"namespace,omitempty" env:"NAMESPACE"`
	// Advanced enables format tags, plurals and variants.
	Advanced bool `yaml:"advanced" env:"ADVANCED"`
	// Project describes the project owning the resource files.
	Project Project `yaml:"project,omitempty" envPrefix:"PROJECT_"`
}

// Project describes the project owning the resource files.
type Project struct {
	Name string `yaml:"name,omitempty" env:"NAME"`
	// Library makes resources addressed as <Name>/<file>.
	Library bool `yaml:"library,omitempty" env:"LIBRARY"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{Version: "1"}
}

// Load reads the config file at path (skipped when it does not exist and
// path is DefaultFile), then applies environment overrides, loading envFile
// first when it exists.
func Load(path, envFile string) (*Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && path == DefaultFile {
		d := Default()
		cfg, err = &d, nil
	}

	if err != nil {
		return nil, err
	}

	if envFile != "" {
		err = godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	err = ApplyEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ApplyEnv overrides cfg with RESWGEN_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}

// Validate checks settings that cannot be used together.
func (c *Config) Validate() error {
	if c.Project.Library && c.Project.Name == "" {
		return fmt.Errorf("%w: project.library requires project.name", ErrInvalidConfig)
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}
}
