package domain

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"

	defaultHTTPPort  = "80"
	defaultHTTPSPort = "443"
)

// ParsedURL is a decomposed URL or host
type ParsedURL struct {
	Scheme string
	// Host is lower case and never contains a port
	Host string
	// Port is always set, either explicitly or derived from the scheme
	Port string
	// IsIP is true if Host is an IPv4 or IPv6 literal
	IsIP bool
	// RawURL is the lower case input with a scheme
	RawURL string
}

// Decompose splits a URL or bare host (with optional port) into its parts.
// Input without any dot is rejected with ErrNotADomain.
func Decompose(input string) (ParsedURL, error) {
	if !strings.Contains(input, ".") {
		return ParsedURL{}, fmt.Errorf("%w: '%s'", ErrNotADomain, input)
	}

	raw := strings.ToLower(input)

	if !strings.HasPrefix(raw, schemeHTTPS+"://") && !strings.HasPrefix(raw, schemeHTTP+"://") {
		raw = fmt.Sprintf("%s://%s", schemeHTTP, raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ParsedURL{}, fmt.Errorf("%w: '%s' can't be parsed: %s", ErrNotADomain, input, unwrapURLError(err))
	}

	// Hostname drops the port, an empty one included, and IPv6 brackets
	host := u.Hostname()
	if len(host) == 0 {
		return ParsedURL{}, fmt.Errorf("%w: '%s' has no host", ErrNotADomain, input)
	}

	port := u.Port()
	if len(port) == 0 {
		port = defaultPort(u.Scheme)
	}

	return ParsedURL{
		Scheme: u.Scheme,
		Host:   host,
		Port:   port,
		IsIP:   isIPLiteral(host),
		RawURL: raw,
	}, nil
}

func defaultPort(scheme string) string {
	if scheme == schemeHTTP {
		return defaultHTTPPort
	}

	return defaultHTTPSPort
}

func isIPLiteral(host string) bool {
	_, err := netip.ParseAddr(host)

	return err == nil
}

func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
