package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/0xERR0R/regdomain/api"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var jsonOutput bool

func addOutputFlag(c *cobra.Command) {
	c.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

// NewParseCommand creates new command instance
func NewParseCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "parse <url>...",
		Args:    cobra.MinimumNArgs(1),
		Short:   "Decomposes URLs and resolves their main domain",
		PreRunE: initConfigPreRun,
		RunE:    parse,
	}

	addOutputFlag(c)

	return c
}

func parse(cmd *cobra.Command, args []string) error {
	resolver := newResolver()

	for _, input := range args {
		res, err := resolver.Parse(input)
		if err != nil {
			return fmt.Errorf("can't parse '%s': %w", input, err)
		}

		out := api.ParseResult{
			Scheme:     res.Scheme,
			Domain:     res.Domain,
			MainDomain: res.MainDomain,
			Port:       res.Port,
			URL:        res.URL,
			IsIP:       res.IsIP,
		}

		if err := printResult(cmd.OutOrStdout(), out, func(w io.Writer) {
			fmt.Fprintf(w, "url:         %s\n", out.URL)
			fmt.Fprintf(w, "scheme:      %s\n", out.Scheme)
			fmt.Fprintf(w, "domain:      %s\n", out.Domain)
			fmt.Fprintf(w, "port:        %s\n", out.Port)
			fmt.Fprintf(w, "main domain: %s\n", out.MainDomain)
			fmt.Fprintf(w, "ip:          %t\n", out.IsIP)
		}); err != nil {
			return err
		}
	}

	return nil
}

// NewMainDomainCommand creates new command instance
func NewMainDomainCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "maindomain <host>...",
		Args:    cobra.MinimumNArgs(1),
		Short:   "Prints the registrable domain of hosts",
		PreRunE: initConfigPreRun,
		RunE:    mainDomain,
	}

	addOutputFlag(c)

	return c
}

func mainDomain(cmd *cobra.Command, args []string) error {
	resolver := newResolver()

	for _, host := range args {
		main, err := resolver.MainDomain(host)
		if err != nil {
			return fmt.Errorf("can't resolve '%s': %w", host, err)
		}

		out := api.MainDomainResult{Host: host, MainDomain: main}

		if err := printResult(cmd.OutOrStdout(), out, func(w io.Writer) {
			fmt.Fprintf(w, "%s\t%s\n", out.Host, out.MainDomain)
		}); err != nil {
			return err
		}
	}

	return nil
}

// NewCdnCommand creates new command instance
func NewCdnCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "cdn <main domain>...",
		Args:    cobra.MinimumNArgs(1),
		Short:   "Checks if main domains are served by a known CDN",
		PreRunE: initConfigPreRun,
		RunE:    cdn,
	}

	addOutputFlag(c)

	return c
}

func cdn(cmd *cobra.Command, args []string) error {
	resolver := newResolver()

	for _, d := range args {
		out := api.CdnResult{Domain: d, IsCdn: resolver.IsCdn(d)}

		if err := printResult(cmd.OutOrStdout(), out, func(w io.Writer) {
			fmt.Fprintf(w, "%s\t%t\n", out.Domain, out.IsCdn)
		}); err != nil {
			return err
		}
	}

	return nil
}

// NewRegistrantCommand creates new command instance
func NewRegistrantCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "registrant <suffix>",
		Args:    cobra.ExactArgs(1),
		Short:   "Prints the registry of a global suffix like .com",
		PreRunE: initConfigPreRun,
		RunE:    registrant,
	}

	addOutputFlag(c)

	return c
}

func registrant(cmd *cobra.Command, args []string) error {
	suffix := args[0]

	rec, err := newResolver().RegistrantInfo(suffix)
	if err != nil {
		return err
	}

	out := api.RegistrantResult{
		Suffix:      suffix,
		URL:         rec.URL,
		RegisterURL: rec.RegisterURL,
		Whois:       rec.Whois,
	}

	return printResult(cmd.OutOrStdout(), out, func(w io.Writer) {
		fmt.Fprintf(w, "suffix:       %s\n", out.Suffix)
		fmt.Fprintf(w, "url:          %s\n", out.URL)
		fmt.Fprintf(w, "register url: %s\n", out.RegisterURL)
		fmt.Fprintf(w, "whois:        %s\n", out.Whois)
	})
}

// NewSuffixesCommand creates new command instance
func NewSuffixesCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "suffixes",
		Args:    cobra.NoArgs,
		Short:   "Lists all global suffixes followed by all country suffixes",
		PreRunE: initConfigPreRun,
		RunE:    suffixes,
	}

	addOutputFlag(c)

	return c
}

func suffixes(cmd *cobra.Command, _ []string) error {
	out := api.SuffixesResult{Suffixes: newResolver().SuffixDomains()}

	return printResult(cmd.OutOrStdout(), out, func(w io.Writer) {
		for _, s := range out.Suffixes {
			fmt.Fprintln(w, s)
		}
	})
}

func printResult(w io.Writer, v interface{}, text func(w io.Writer)) error {
	if !jsonOutput {
		text(w)

		return nil
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("can't write output: %w", err)
	}

	return nil
}
