package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/0xERR0R/regdomain/domain"
	"github.com/0xERR0R/regdomain/log"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	contentTypeHeader = "content-type"
	jsonContentType   = "application/json"
)

func logger() *logrus.Entry {
	return log.PrefixedLog("api")
}

// DomainEndpoint endpoint for all domain lookups
type DomainEndpoint struct {
	resolver domain.DomainResolver
}

// RegisterEndpoint registers the resolver as HTTP endpoint
func RegisterEndpoint(router chi.Router, resolver domain.DomainResolver) {
	e := &DomainEndpoint{resolver: resolver}

	router.Get(PathParse, e.apiParse)
	router.Get(PathMainDomain, e.apiMainDomain)
	router.Get(PathCdn, e.apiCdn)
	router.Get(PathRegistrant, e.apiRegistrant)
	router.Get(PathSuffixes, e.apiSuffixes)
}

// apiParse is the http endpoint to decompose an URL
// @Summary Parse URL
// @Description Splits an URL or host into its parts and resolves the main domain
// @Tags domain
// @Produce json
// @Param url query string true "URL or host"
// @Success 200 {object} api.ParseResult "URL was parsed"
// @Failure 400 {object} api.ErrorResult "Parameter is missing or not a domain"
// @Router /parse [get]
func (e *DomainEndpoint) apiParse(rw http.ResponseWriter, req *http.Request) {
	input, ok := requiredParam(rw, req, "url")
	if !ok {
		return
	}

	res, err := e.resolver.Parse(input)
	if err != nil {
		writeError(rw, err)

		return
	}

	writeJSON(rw, http.StatusOK, ParseResult{
		Scheme:     res.Scheme,
		Domain:     res.Domain,
		MainDomain: res.MainDomain,
		Port:       res.Port,
		URL:        res.URL,
		IsIP:       res.IsIP,
	})
}

// apiMainDomain is the http endpoint to resolve the main domain of a host
// @Summary Main domain
// @Description Returns the registrable domain of a host
// @Tags domain
// @Produce json
// @Param host query string true "host name"
// @Success 200 {object} api.MainDomainResult "Main domain was resolved"
// @Failure 400 {object} api.ErrorResult "Parameter is missing or not a domain"
// @Router /maindomain [get]
func (e *DomainEndpoint) apiMainDomain(rw http.ResponseWriter, req *http.Request) {
	host, ok := requiredParam(rw, req, "host")
	if !ok {
		return
	}

	main, err := e.resolver.MainDomain(host)
	if err != nil {
		writeError(rw, err)

		return
	}

	writeJSON(rw, http.StatusOK, MainDomainResult{Host: host, MainDomain: main})
}

// apiCdn is the http endpoint to check a main domain against the CDN list
// @Summary CDN check
// @Description Checks if the main domain is served by a known CDN
// @Tags domain
// @Produce json
// @Param domain query string true "main domain"
// @Success 200 {object} api.CdnResult "Domain was checked"
// @Failure 400 {object} api.ErrorResult "Parameter is missing"
// @Router /cdn [get]
func (e *DomainEndpoint) apiCdn(rw http.ResponseWriter, req *http.Request) {
	d, ok := requiredParam(rw, req, "domain")
	if !ok {
		return
	}

	writeJSON(rw, http.StatusOK, CdnResult{Domain: d, IsCdn: e.resolver.IsCdn(d)})
}

// apiRegistrant is the http endpoint to get the registry of a global suffix
// @Summary Registrant info
// @Description Returns registry information of a global suffix like ".com"
// @Tags domain
// @Produce json
// @Param suffix query string true "global suffix with leading dot"
// @Success 200 {object} api.RegistrantResult "Suffix was found"
// @Failure 400 {object} api.ErrorResult "Parameter is missing"
// @Failure 404 {object} api.ErrorResult "Suffix is unknown"
// @Router /registrant [get]
func (e *DomainEndpoint) apiRegistrant(rw http.ResponseWriter, req *http.Request) {
	suffix, ok := requiredParam(rw, req, "suffix")
	if !ok {
		return
	}

	rec, err := e.resolver.RegistrantInfo(suffix)
	if err != nil {
		writeError(rw, err)

		return
	}

	writeJSON(rw, http.StatusOK, RegistrantResult{
		Suffix:      suffix,
		URL:         rec.URL,
		RegisterURL: rec.RegisterURL,
		Whois:       rec.Whois,
	})
}

// apiSuffixes is the http endpoint to list all suffixes
// @Summary Suffixes
// @Description Lists all global suffixes followed by all country suffixes
// @Tags domain
// @Produce json
// @Success 200 {object} api.SuffixesResult "All suffixes"
// @Router /suffixes [get]
func (e *DomainEndpoint) apiSuffixes(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, SuffixesResult{Suffixes: e.resolver.SuffixDomains()})
}

func requiredParam(rw http.ResponseWriter, req *http.Request, name string) (string, bool) {
	val := req.URL.Query().Get(name)
	if len(val) == 0 {
		writeJSON(rw, http.StatusBadRequest, ErrorResult{Error: fmt.Sprintf("parameter '%s' is missing", name)})

		return "", false
	}

	return val, true
}

func writeError(rw http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrNotADomain):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	default:
		logger().Error("unable to process request: ", err)
	}

	logger().Debug("request failed: ", log.EscapeInput(err.Error()))

	writeJSON(rw, status, ErrorResult{Error: err.Error()})
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set(contentTypeHeader, jsonContentType)
	rw.WriteHeader(status)

	if err := json.NewEncoder(rw).Encode(v); err != nil {
		logger().Error("unable to write response: ", log.EscapeInput(err.Error()))
	}
}
