package corpus

import (
	"strings"

	"github.com/0xERR0R/regdomain/trie"
)

// SuffixSet is an immutable, ordered set of dot prefixed suffixes like ".com" or ".co.uk".
type SuffixSet struct {
	entries []string
	index   map[string]int
	trie    *trie.Trie
}

// NewSuffixSet builds a set from entries in their corpus order.
// Empty entries are skipped, duplicates keep their first position.
func NewSuffixSet(entries []string) *SuffixSet {
	s := &SuffixSet{
		index: make(map[string]int, len(entries)),
		trie:  trie.NewTrie(),
	}

	for _, e := range entries {
		if len(e) == 0 {
			continue
		}

		if _, ok := s.index[e]; ok {
			continue
		}

		s.index[e] = len(s.entries)
		s.entries = append(s.entries, e)

		// a candidate is always the remaining labels with a leading dot,
		// entries without one can never match
		if strings.HasPrefix(e, ".") {
			s.trie.Insert(e)
		}
	}

	return s
}

// Len returns the number of distinct entries
func (s *SuffixSet) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in corpus order
func (s *SuffixSet) Entries() []string {
	res := make([]string, len(s.entries))
	copy(res, s.entries)

	return res
}

// Has reports whether suffix is an entry, compared verbatim
func (s *SuffixSet) Has(suffix string) bool {
	_, ok := s.index[suffix]

	return ok
}

// MatchDepths returns for every depth d in [1, len(labels)] whether the last d labels,
// joined with dots and prefixed with a dot, are an entry of the set.
func (s *SuffixSet) MatchDepths(labels []string) []bool {
	res := make([]bool, len(labels)+1)

	s.trie.Walk(labels, func(depth int) {
		res[depth] = true
	})

	return res
}
