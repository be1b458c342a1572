package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0xERR0R/regdomain/config"
)

// SourceOpener opens a configured corpus source for reading
type SourceOpener interface {
	fmt.Stringer

	Open() (io.ReadCloser, error)
}

// NewSourceOpener returns an opener for inline text or local file sources
func NewSourceOpener(name string, source config.BytesSource) (SourceOpener, error) {
	switch source.Type {
	case config.BytesSourceTypeText:
		return &textOpener{source: source, name: name}, nil

	case config.BytesSourceTypeFile:
		return &fileOpener{source: source}, nil
	}

	return nil, fmt.Errorf("cannot open %s", source)
}

type textOpener struct {
	source config.BytesSource
	name   string
}

func (o *textOpener) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(o.source.From)), nil
}

func (o *textOpener) String() string {
	return fmt.Sprintf("%s: %s", o.name, o.source)
}

type fileOpener struct {
	source config.BytesSource
}

func (o *fileOpener) Open() (io.ReadCloser, error) {
	return os.Open(o.source.From)
}

func (o *fileOpener) String() string {
	return o.source.String()
}
