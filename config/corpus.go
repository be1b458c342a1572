package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	defaultGtldFile        = "deps/gtld.txt"
	defaultCctldFile       = "deps/cctld.txt"
	defaultCdnFile         = "deps/cdn.txt"
	defaultRegistrantsFile = "deps/gtld_register.txt"
)

// CorpusConfig locations of the static lists
type CorpusConfig struct {
	// Gtld single label suffixes, one per line, e.g. ".com"
	Gtld BytesSource `yaml:"gtld"`
	// Cctld multi label suffixes, one per line, e.g. ".co.uk"
	Cctld BytesSource `yaml:"cctld"`
	// Cdn main domains served by CDNs
	Cdn BytesSource `yaml:"cdn"`
	// Registrants "url,registerUrl,whois" per line, in the same order as Gtld
	Registrants BytesSource `yaml:"registrants"`
}

// SetDefaults implements `defaults.Setter`.
func (c *CorpusConfig) SetDefaults() {
	setDefaultFile(&c.Gtld, defaultGtldFile)
	setDefaultFile(&c.Cctld, defaultCctldFile)
	setDefaultFile(&c.Cdn, defaultCdnFile)
	setDefaultFile(&c.Registrants, defaultRegistrantsFile)
}

func setDefaultFile(s *BytesSource, path string) {
	if s.IsEmpty() {
		*s = BytesSource{Type: BytesSourceTypeFile, From: path}
	}
}

// IsEnabled implements `config.Configurable`.
func (c *CorpusConfig) IsEnabled() bool {
	return true
}

// LogConfig implements `config.Configurable`.
func (c *CorpusConfig) LogConfig(logger *logrus.Entry) {
	logger.Infof("gtld = %s", c.Gtld)
	logger.Infof("cctld = %s", c.Cctld)
	logger.Infof("cdn = %s", c.Cdn)
	logger.Infof("registrants = %s", c.Registrants)
}

func (c *CorpusConfig) validate() []error {
	var errs []error

	for name, s := range map[string]BytesSource{
		"gtld":        c.Gtld,
		"cctld":       c.Cctld,
		"cdn":         c.Cdn,
		"registrants": c.Registrants,
	} {
		if s.IsEmpty() {
			continue
		}

		if s.Type != BytesSourceTypeText && s.Type != BytesSourceTypeFile {
			errs = append(errs, fmt.Errorf("corpus.%s: unsupported source type %s", name, s.Type))
		}
	}

	return errs
}
