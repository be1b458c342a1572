package domain

import "errors"

var (
	// ErrNotADomain is returned for input which does not contain a dot or can't be parsed as URL
	ErrNotADomain = errors.New("not a domain")

	// ErrNotFound is returned if a suffix has no registrant record
	ErrNotFound = errors.New("not found")
)
