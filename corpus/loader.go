package corpus

import (
	"context"
	"io"
	"sync"

	"github.com/0xERR0R/regdomain/config"
	"github.com/0xERR0R/regdomain/corpus/parsers"
	"github.com/0xERR0R/regdomain/evt"
	"github.com/0xERR0R/regdomain/log"

	"github.com/sirupsen/logrus"
)

const (
	NameGtld        = "gtld"
	NameCctld       = "cctld"
	NameCdn         = "cdn"
	NameRegistrants = "registrants"
)

func logger() *logrus.Entry {
	return log.PrefixedLog("corpus")
}

// Loader reads every corpus at most once.
//
// A source which is not configured or can't be read results in an empty corpus,
// the problem is only logged. Loader is safe for concurrent use.
type Loader struct {
	cfg config.CorpusConfig

	gtldOnce  sync.Once
	gtldLines []string
	gtld      *SuffixSet

	cctldOnce sync.Once
	cctld     *SuffixSet

	cdnOnce sync.Once
	cdn     *CdnSet

	registrantsOnce sync.Once
	registrants     *RegistrantTable
}

// NewLoader creates a loader for the configured sources, nothing is read yet
func NewLoader(cfg config.CorpusConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load reads all corpora which were not read yet and returns them as one snapshot
func (l *Loader) Load() *Corpus {
	return &Corpus{
		Gtld:        l.Gtld(),
		Cctld:       l.Cctld(),
		Cdn:         l.Cdn(),
		Registrants: l.Registrants(),
	}
}

// Gtld returns the single label suffixes
func (l *Loader) Gtld() *SuffixSet {
	l.gtldOnce.Do(func() {
		// positions matter for the registrant join, so blank lines are kept
		l.gtldLines = readSeries(NameGtld, l.cfg.Gtld, parsers.RawLines)
		l.gtld = NewSuffixSet(l.gtldLines)

		published(NameGtld, l.gtld.Len())
	})

	return l.gtld
}

// Cctld returns the multi label suffixes
func (l *Loader) Cctld() *SuffixSet {
	l.cctldOnce.Do(func() {
		l.cctld = NewSuffixSet(readSeries(NameCctld, l.cfg.Cctld, parsers.Lines))

		published(NameCctld, l.cctld.Len())
	})

	return l.cctld
}

// Cdn returns the main domains served by a CDN
func (l *Loader) Cdn() *CdnSet {
	l.cdnOnce.Do(func() {
		l.cdn = NewCdnSet(readSeries(NameCdn, l.cfg.Cdn, parsers.Lines))

		published(NameCdn, l.cdn.Len())
	})

	return l.cdn
}

// Registrants returns the registrant records joined with the gtld corpus by line position
func (l *Loader) Registrants() *RegistrantTable {
	l.registrantsOnce.Do(func() {
		l.Gtld()

		records := readSeries(NameRegistrants, l.cfg.Registrants, func(r io.Reader) parsers.SeriesParser[*RegistrantRecord] {
			return parsers.UnmarshalEach[*RegistrantRecord](parsers.RawLines(r))
		})

		values := make([]RegistrantRecord, len(records))
		for i, rec := range records {
			values[i] = *rec
		}

		l.registrants = NewRegistrantTable(l.gtldLines, values)

		published(NameRegistrants, l.registrants.Len())
	})

	return l.registrants
}

func published(name string, count int) {
	logger().WithFields(logrus.Fields{
		"corpus":  name,
		"entries": count,
	}).Info("corpus loaded")

	evt.Bus().Publish(evt.CorpusLoaded, name, count)
}

func readSeries[T any](name string, source config.BytesSource, parse func(io.Reader) parsers.SeriesParser[T]) []T {
	if source.IsEmpty() {
		logger().WithField("corpus", name).Warn("no source configured, corpus is empty")

		return nil
	}

	opener, err := NewSourceOpener(name, source)
	if err != nil {
		logger().WithField("corpus", name).Warn("corpus is empty: ", err)

		return nil
	}

	r, err := opener.Open()
	if err != nil {
		logger().WithField("source", opener.String()).Warn("can't open corpus, corpus is empty: ", err)

		return nil
	}

	defer r.Close()

	res, err := parsers.Collect(context.Background(), parse(r))
	if err != nil {
		// a partially read positional list would be misaligned
		logger().WithField("source", opener.String()).Warn("can't read corpus, corpus is empty: ", err)

		return nil
	}

	return res
}
