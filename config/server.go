package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ServerConfig configuration for the HTTP API
type ServerConfig struct {
	ReadTimeout       Duration `yaml:"readTimeout" default:"20s"`
	ReadHeaderTimeout Duration `yaml:"readHeaderTimeout" default:"20s"`
	WriteTimeout      Duration `yaml:"writeTimeout" default:"20s"`
	// CorsOrigins allowed origins for browser requests, empty disables CORS headers
	CorsOrigins []string `yaml:"corsOrigins"`
}

// IsEnabled implements `config.Configurable`.
func (c *ServerConfig) IsEnabled() bool {
	return true
}

// LogConfig implements `config.Configurable`.
func (c *ServerConfig) LogConfig(logger *logrus.Entry) {
	logger.Infof("readTimeout = %s", c.ReadTimeout)
	logger.Infof("readHeaderTimeout = %s", c.ReadHeaderTimeout)
	logger.Infof("writeTimeout = %s", c.WriteTimeout)

	if len(c.CorsOrigins) > 0 {
		logger.Infof("corsOrigins = %s", strings.Join(c.CorsOrigins, ", "))
	}
}

func (c *ServerConfig) validate() []error {
	var errs []error

	for name, d := range map[string]Duration{
		"readTimeout":       c.ReadTimeout,
		"readHeaderTimeout": c.ReadHeaderTimeout,
		"writeTimeout":      c.WriteTimeout,
	} {
		if !d.IsAboveZero() {
			errs = append(errs, fmt.Errorf("server.%s must be above zero", name))
		}
	}

	return errs
}
