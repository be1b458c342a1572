package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/0xERR0R/regdomain/log"

	"github.com/creasty/defaults"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Configurable is a section of the configuration which can describe itself
type Configurable interface {
	// IsEnabled returns true when the component configured by this is enabled.
	IsEnabled() bool

	// LogConfig logs the configuration values.
	LogConfig(*logrus.Entry)
}

// Config main configuration
type Config struct {
	Corpus     CorpusConfig  `yaml:"corpus"`
	Caching    CachingConfig `yaml:"caching"`
	Log        log.Config    `yaml:"log"`
	Ports      PortsConfig   `yaml:"ports"`
	Server     ServerConfig  `yaml:"server"`
	Prometheus MetricsConfig `yaml:"prometheus"`
}

// PortsConfig ports the application listens on
type PortsConfig struct {
	HTTP string `yaml:"http" default:"4000"`
}

// HTTPAddr returns the listen address for the HTTP port
func (c *PortsConfig) HTTPAddr() string {
	if strings.Contains(c.HTTP, ":") {
		return c.HTTP
	}

	return ":" + c.HTTP
}

// LoadConfig creates new config from YAML file. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg, err := NewDefaultConfig()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration path '%s' does not exist: %w", path, err)
		}

		return nil, fmt.Errorf("can't read config file: %w", err)
	}

	if err := unmarshalConfig(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewDefaultConfig returns a config with all default values applied
func NewDefaultConfig() (*Config, error) {
	cfg := new(Config)

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("can't apply default values: %w", err)
	}

	return cfg, nil
}

func unmarshalConfig(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("wrong file structure: %w", err)
	}

	return cfg.Validate()
}

// Validate checks the whole configuration and returns all problems at once
func (cfg *Config) Validate() error {
	var result *multierror.Error

	result = multierror.Append(result, cfg.Corpus.validate()...)
	result = multierror.Append(result, cfg.Caching.validate()...)
	result = multierror.Append(result, cfg.Server.validate()...)

	if cfg.Prometheus.Enable && !strings.HasPrefix(cfg.Prometheus.Path, "/") {
		result = multierror.Append(result, fmt.Errorf("prometheus path '%s' must start with '/'", cfg.Prometheus.Path))
	}

	if cfg.Ports.HTTP == "" {
		result = multierror.Append(result, errors.New("ports.http must not be empty"))
	}

	return result.ErrorOrNil()
}

// LogConfig logs all sections with the passed logger
func (cfg *Config) LogConfig(logger *logrus.Entry) {
	sections := []struct {
		name string
		cfg  Configurable
	}{
		{"corpus", &cfg.Corpus},
		{"caching", &cfg.Caching},
		{"server", &cfg.Server},
		{"prometheus", &cfg.Prometheus},
	}

	for _, s := range sections {
		if !s.cfg.IsEnabled() {
			logger.Infof("%s: disabled", s.name)

			continue
		}

		logger.Infof("%s:", s.name)
		s.cfg.LogConfig(logger.WithField("section", s.name))
	}
}
