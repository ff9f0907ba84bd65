package vocabulary

import "strings"

// Entry is a single vocabulary pair. Term is the English surface form and
// Definition the Spanish replacement.
type Entry struct {
	ID         int64  `json:"id,omitempty"`
	Term       string `json:"English"`
	Definition string `json:"Spanish"`
}

// Usable returns the entries whose term and definition are both non-empty
// after trimming, trimmed, in their original order.
func Usable(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		term := strings.TrimSpace(e.Term)
		def := strings.TrimSpace(e.Definition)
		if term == "" || def == "" {
			continue
		}
		out = append(out, Entry{ID: e.ID, Term: term, Definition: def})
	}
	return out
}
