package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xERR0R/regdomain/config"
	"github.com/0xERR0R/regdomain/corpus"
	"github.com/0xERR0R/regdomain/log"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates new command instance
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Args:  cobra.NoArgs,
		Short: "Validates the configuration and checks that every corpus source is readable",
		RunE:  validateConfiguration,
	}
}

func validateConfiguration(_ *cobra.Command, _ []string) error {
	log.Log().Infof("Validating configuration file: %s", configPath)

	_, err := os.Stat(configPath)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("configuration path '%s' does not exist", configPath)
	}

	err = initConfig()
	if err != nil {
		return err
	}

	if err := checkCorpusSources(cfg.Corpus); err != nil {
		return err
	}

	log.Log().Info("Configuration is valid")

	return nil
}

// checkCorpusSources reads every configured corpus source once. The loader treats
// an unreadable source as an empty corpus, so this is the only place it fails loudly.
func checkCorpusSources(c config.CorpusConfig) error {
	var errs error

	for _, src := range []struct {
		name   string
		source config.BytesSource
	}{
		{corpus.NameGtld, c.Gtld},
		{corpus.NameCctld, c.Cctld},
		{corpus.NameCdn, c.Cdn},
		{corpus.NameRegistrants, c.Registrants},
	} {
		if src.source.IsEmpty() {
			log.Log().Warnf("corpus %s is not configured and will be empty", src.name)

			continue
		}

		if err := readSource(src.name, src.source); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("corpus %s (%s): %w", src.name, src.source, err))

			continue
		}

		log.Log().Infof("corpus %s is readable: %s", src.name, src.source)
	}

	return errs
}

func readSource(name string, source config.BytesSource) error {
	opener, err := corpus.NewSourceOpener(name, source)
	if err != nil {
		return err
	}

	r, err := opener.Open()
	if err != nil {
		return err
	}

	defer r.Close()

	_, err = io.Copy(io.Discard, r)

	return err
}
