package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xERR0R/regdomain/config"
	"github.com/0xERR0R/regdomain/domain"
	"github.com/0xERR0R/regdomain/log"
	"github.com/0xERR0R/regdomain/server"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	configPath string
	cfg        *config.Config
)

const (
	defaultConfigPath = "./config.yml"
	configFileEnvVar  = "REGDOMAIN_CONFIG_FILE"
)

// NewRootCommand creates new root command
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "regdomain",
		Short: "regdomain resolves the registrable domain of URLs and hosts",
		Long: `Decomposes URLs, resolves their main (registrable) domain
with a list of global and country suffixes, detects CDN domains
and looks up the registry of global suffixes.`,
		SilenceUsage: true,
		PreRunE:      initConfigPreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer(cmd, args)
		},
	}

	c.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config file")

	c.AddCommand(
		NewParseCommand(),
		NewMainDomainCommand(),
		NewCdnCommand(),
		NewRegistrantCommand(),
		NewSuffixesCommand(),
		newServeCommand(),
		NewValidateCommand(),
		NewVersionCommand(),
	)

	return c
}

func initConfigPreRun(_ *cobra.Command, _ []string) error {
	return initConfig()
}

// initConfig loads the configuration. Without an explicit path, a missing
// default file falls back to the default values.
func initConfig() error {
	path := configPath

	if path == defaultConfigPath {
		if val, present := os.LookupEnv(configFileEnvVar); present {
			configPath = val
			path = val
		} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	c, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}

	cfg = c

	log.ConfigureLogger(cfg.Log)

	return nil
}

// newResolver loads the configured corpora
func newResolver() domain.DomainResolver {
	return server.NewDomainResolver(cfg)
}

// Execute starts the command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
