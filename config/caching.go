package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CachingConfig configuration for the main domain result cache
type CachingConfig struct {
	// MaxItemsCount 0 disables the cache
	MaxItemsCount int `yaml:"maxItemsCount" default:"10000"`
}

// IsEnabled implements `config.Configurable`.
func (c *CachingConfig) IsEnabled() bool {
	return c.MaxItemsCount > 0
}

// LogConfig implements `config.Configurable`.
func (c *CachingConfig) LogConfig(logger *logrus.Entry) {
	logger.Infof("maxItemsCount = %d", c.MaxItemsCount)
}

func (c *CachingConfig) validate() []error {
	if c.MaxItemsCount < 0 {
		return []error{fmt.Errorf("caching.maxItemsCount must not be negative, got %d", c.MaxItemsCount)}
	}

	return nil
}
