// @title regdomain API
// @description Main domain, CDN and registrant lookups

// @contact.name regdomain@github
// @contact.url https://github.com/0xERR0R/regdomain

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/
package api

const (
	PathParse      = "/api/parse"
	PathMainDomain = "/api/maindomain"
	PathCdn        = "/api/cdn"
	PathRegistrant = "/api/registrant"
	PathSuffixes   = "/api/suffixes"
)

// ParseResult the decomposed URL with its main domain
type ParseResult struct {
	// Scheme, http if the input had none
	Scheme string `json:"scheme"`
	// Decoded host
	Domain string `json:"domain"`
	// Registrable domain
	MainDomain string `json:"mainDomain"`
	// Explicit port or default port of the scheme
	Port string `json:"port"`
	// Lower case input with scheme
	URL string `json:"url"`
	// True if the host is an IP address
	IsIP bool `json:"isIp"`
}

// MainDomainResult the main domain of a host
type MainDomainResult struct {
	Host       string `json:"host"`
	MainDomain string `json:"mainDomain"`
}

// CdnResult whether a main domain is served by a CDN
type CdnResult struct {
	Domain string `json:"domain"`
	IsCdn  bool   `json:"isCdn"`
}

// RegistrantResult registry information of a global suffix
type RegistrantResult struct {
	Suffix      string `json:"suffix"`
	URL         string `json:"url"`
	RegisterURL string `json:"registerUrl"`
	Whois       string `json:"whois"`
}

// SuffixesResult all known suffixes
type SuffixesResult struct {
	Suffixes []string `json:"suffixes"`
}

// ErrorResult is returned for every failed request
type ErrorResult struct {
	Error string `json:"error"`
}
