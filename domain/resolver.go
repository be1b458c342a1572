package domain

import (
	"fmt"
	"strings"

	"github.com/0xERR0R/regdomain/corpus"
	"github.com/0xERR0R/regdomain/evt"
	"github.com/0xERR0R/regdomain/log"

	"github.com/sirupsen/logrus"
)

// Kinds of suffix a main domain was resolved with, published with evt.DomainResolved
const (
	KindCctld = "cctld"
	KindGtld  = "gtld"
	KindNone  = "none"
	KindIP    = "ip"
)

func logger() *logrus.Entry {
	return log.PrefixedLog("domain")
}

// DomainResolver is the public API of the library
type DomainResolver interface {
	// Parse decomposes a URL or host and resolves its main domain
	Parse(input string) (Result, error)

	// MainDomain returns the registrable domain of host
	MainDomain(host string) (string, error)

	// IsCdn reports whether the main domain is served by a known CDN
	IsCdn(mainDomain string) bool

	// RegistrantInfo returns the registrant record of a global suffix like ".com"
	RegistrantInfo(suffix string) (corpus.RegistrantRecord, error)

	// SuffixDomains returns every known suffix
	SuffixDomains() []string
}

// Result of parsing a URL or host
type Result struct {
	Scheme     string `json:"scheme"`
	Domain     string `json:"domain"`
	MainDomain string `json:"mainDomain"`
	Port       string `json:"port"`
	URL        string `json:"url"`
	IsIP       bool   `json:"isIp"`
}

// Resolver resolves main domains with an immutable corpus.
// It is safe for concurrent use.
type Resolver struct {
	corpus *corpus.Corpus
	codec  IdnCodec
}

type ResolverOption func(r *Resolver)

// WithIdnCodec replaces the default IDNA codec
func WithIdnCodec(codec IdnCodec) ResolverOption {
	return func(r *Resolver) {
		r.codec = codec
	}
}

func NewResolver(c *corpus.Corpus, options ...ResolverOption) *Resolver {
	r := &Resolver{
		corpus: c,
		codec:  NewIDNACodec(),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Parse implements `DomainResolver`.
//
// IP literals are their own main domain, no suffix matching takes place for them.
func (r *Resolver) Parse(input string) (Result, error) {
	return r.parse(input, r.resolve)
}

// MainDomain implements `DomainResolver`.
func (r *Resolver) MainDomain(host string) (string, error) {
	host, err := r.prepare(host)
	if err != nil {
		return "", err
	}

	return r.resolve(host), nil
}

// IsCdn implements `DomainResolver`.
func (r *Resolver) IsCdn(mainDomain string) bool {
	return r.corpus.Cdn.Contains(mainDomain)
}

// RegistrantInfo implements `DomainResolver`.
//
// Only global suffixes have registrant records. The suffix is compared verbatim.
func (r *Resolver) RegistrantInfo(suffix string) (corpus.RegistrantRecord, error) {
	if !r.corpus.Gtld.Has(suffix) {
		return corpus.RegistrantRecord{}, fmt.Errorf("%w: no registrant for suffix '%s'", ErrNotFound, suffix)
	}

	rec, _ := r.corpus.Registrants.Lookup(suffix)

	return rec, nil
}

// SuffixDomains implements `DomainResolver`.
func (r *Resolver) SuffixDomains() []string {
	return r.corpus.SuffixDomains()
}

func (r *Resolver) parse(input string, resolve func(host string) string) (Result, error) {
	parsed, err := Decompose(input)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Scheme: parsed.Scheme,
		Port:   parsed.Port,
		URL:    parsed.RawURL,
		IsIP:   parsed.IsIP,
	}

	if parsed.IsIP {
		res.Domain = parsed.Host
		res.MainDomain = parsed.Host

		evt.Bus().Publish(evt.DomainResolved, KindIP)

		return res, nil
	}

	res.Domain, err = r.prepare(parsed.Host)
	if err != nil {
		return Result{}, err
	}

	res.MainDomain = resolve(res.Domain)

	return res, nil
}

// prepare lower cases and decodes host
func (r *Resolver) prepare(host string) (string, error) {
	host = strings.ToLower(host)

	if !strings.Contains(host, ".") {
		return "", fmt.Errorf("%w: '%s'", ErrNotADomain, host)
	}

	return r.decode(host), nil
}

func (r *Resolver) decode(host string) string {
	if !strings.Contains(host, acePrefix) {
		return host
	}

	decoded := r.codec.Decode(host)
	if decoded.Failed() {
		logger().WithField("host", log.EscapeInput(host)).Debug("can't decode host, using it as is: ", decoded.Err)

		evt.Bus().Publish(evt.IdnDecodeFailed, host)

		return host
	}

	return decoded.Value
}

func (r *Resolver) resolve(host string) string {
	mainDomain, kind := r.match(host)

	evt.Bus().Publish(evt.DomainResolved, kind)

	return mainDomain
}

// match searches the suffix boundary from left to right: the leftmost label is
// removed until the remaining labels form a known suffix. Two or more remaining labels
// are only matched against cctld, a single remaining label only against gtld. The
// search also ends when an empty label was removed.
//
// The main domain is the matched suffix plus one label. Without any match it is the
// rightmost label.
func (r *Resolver) match(host string) (mainDomain, kind string) {
	labels := strings.Split(host, ".")
	count := len(labels)

	cctld := r.corpus.Cctld.MatchDepths(labels)
	gtld := r.corpus.Gtld.MatchDepths(labels)

	remaining := 0
	kind = KindNone

	for removed := 1; removed <= count; removed++ {
		if labels[removed-1] == "" {
			remaining = count - removed

			break
		}

		left := count - removed

		if left >= 2 && cctld[left] {
			remaining, kind = left, KindCctld

			break
		}

		if left == 1 && gtld[left] {
			remaining, kind = left, KindGtld

			break
		}
	}

	return strings.Join(labels[count-remaining-1:], "."), kind
}
