package corpus

// Corpus is an immutable snapshot of all corpora a resolver works with
type Corpus struct {
	Gtld        *SuffixSet
	Cctld       *SuffixSet
	Cdn         *CdnSet
	Registrants *RegistrantTable
}

// New builds a corpus from in memory entries. The registrant records are
// joined with gtld by position.
func New(gtld, cctld, cdn []string, registrants []RegistrantRecord) *Corpus {
	return &Corpus{
		Gtld:        NewSuffixSet(gtld),
		Cctld:       NewSuffixSet(cctld),
		Cdn:         NewCdnSet(cdn),
		Registrants: NewRegistrantTable(gtld, registrants),
	}
}

// SuffixDomains returns every known suffix: the gtld entries followed by the cctld
// entries, each suffix only once.
func (c *Corpus) SuffixDomains() []string {
	res := make([]string, 0, c.Gtld.Len()+c.Cctld.Len())
	seen := make(map[string]struct{}, cap(res))

	for _, set := range []*SuffixSet{c.Gtld, c.Cctld} {
		for _, s := range set.entries {
			if _, ok := seen[s]; ok {
				continue
			}

			seen[s] = struct{}{}
			res = append(res, s)
		}
	}

	return res
}
