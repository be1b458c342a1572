package corpus

import "strings"

// RegistrantRecord describes the registry of a global suffix
type RegistrantRecord struct {
	URL         string `json:"url"`
	RegisterURL string `json:"registerUrl"`
	Whois       string `json:"whois"`
}

// UnmarshalText implements `encoding.TextUnmarshaler`.
//
// The line is split on ",", missing fields stay empty and surplus fields are ignored.
func (r *RegistrantRecord) UnmarshalText(data []byte) error {
	fields := strings.Split(string(data), ",")

	*r = RegistrantRecord{}

	for i, dst := range []*string{&r.URL, &r.RegisterURL, &r.Whois} {
		if i < len(fields) {
			*dst = fields[i]
		}
	}

	return nil
}

// RegistrantTable maps a global suffix to its registrant record
type RegistrantTable struct {
	records map[string]RegistrantRecord
}

// NewRegistrantTable joins suffixes and records by position: the record at index i
// belongs to the suffix at index i. Nothing checks that both sequences describe the same
// suffixes, a misaligned pair of sources silently produces wrong records.
//
// A suffix without a record at its index gets an empty record. A suffix listed several
// times keeps the record of its first position.
func NewRegistrantTable(suffixes []string, records []RegistrantRecord) *RegistrantTable {
	t := &RegistrantTable{records: make(map[string]RegistrantRecord, len(suffixes))}

	for i, s := range suffixes {
		if len(s) == 0 {
			continue
		}

		if _, ok := t.records[s]; ok {
			continue
		}

		var rec RegistrantRecord
		if i < len(records) {
			rec = records[i]
		}

		t.records[s] = rec
	}

	return t
}

// Lookup returns the record of suffix
func (t *RegistrantTable) Lookup(suffix string) (RegistrantRecord, bool) {
	rec, ok := t.records[suffix]

	return rec, ok
}

// Len returns the number of suffixes in the table
func (t *RegistrantTable) Len() int {
	return len(t.records)
}
