package domain

import (
	"golang.org/x/net/idna"
)

// acePrefix marks a punycode encoded label
const acePrefix = "xn--"

// Decoded is the outcome of decoding a host.
// Value is always usable: on failure it holds the input unchanged and Err is set.
type Decoded struct {
	Value string
	Err   error
}

// Failed reports whether decoding fell back to the input
func (d Decoded) Failed() bool {
	return d.Err != nil
}

// IdnCodec converts ASCII compatible encoded hosts to unicode
type IdnCodec interface {
	Decode(host string) Decoded
}

// IDNACodec decodes punycode labels without validating the result,
// labels like "_dmarc" are kept as they are
type IDNACodec struct {
	profile *idna.Profile
}

func NewIDNACodec() *IDNACodec {
	return &IDNACodec{profile: idna.Punycode}
}

// Decode implements `IdnCodec`.
func (c *IDNACodec) Decode(host string) Decoded {
	res, err := c.profile.ToUnicode(host)
	if err != nil {
		return Decoded{Value: host, Err: err}
	}

	return Decoded{Value: res}
}
