package vocabulary

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Index maps a lower-cased term to its definition.
type Index map[string]string

// BuildIndex builds the lookup index for entries. When two terms collide
// case-insensitively the later entry wins.
func BuildIndex(entries []Entry) Index {
	idx := make(Index, len(entries))
	for _, e := range Usable(entries) {
		idx[strings.ToLower(e.Term)] = e.Definition
	}
	return idx
}

// Candidates returns the distinct terms of entries ordered by descending
// length in runes. Each term keeps the casing of the last entry that
// carried it; terms of equal length keep their first-seen order.
func Candidates(entries []Entry) []string {
	usable := Usable(entries)
	order := make([]string, 0, len(usable))
	casing := make(map[string]string, len(usable))
	for _, e := range usable {
		key := strings.ToLower(e.Term)
		if _, seen := casing[key]; !seen {
			order = append(order, key)
		}
		casing[key] = e.Term
	}

	terms := make([]string, len(order))
	for i, key := range order {
		terms[i] = casing[key]
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return utf8.RuneCountInString(terms[i]) > utf8.RuneCountInString(terms[j])
	})
	return terms
}

// Matcher substitutes vocabulary terms in text with their definitions.
// A Matcher is immutable once built and safe for concurrent use.
type Matcher struct {
	index   Index
	stored  map[string]string // lower-cased term -> casing as stored
	pattern *regexp.Regexp
}

// NewMatcher compiles a matcher for entries. Entries with an empty term or
// definition are ignored; with nothing left the matcher is a no-op.
func NewMatcher(entries []Entry) *Matcher {
	terms := Candidates(entries)
	if len(terms) == 0 {
		return &Matcher{}
	}

	stored := make(map[string]string, len(terms))
	quoted := make([]string, len(terms))
	for i, term := range terms {
		stored[strings.ToLower(term)] = term
		quoted[i] = regexp.QuoteMeta(term)
	}

	// Alternatives are tried in order, so the longest term wins at a given
	// position. The trailing group only asserts the right word boundary; the
	// matched term itself is capture group 1.
	expr := `^((?i:` + strings.Join(quoted, "|") + `))(?:$|[^\p{L}\p{N}_])`

	return &Matcher{
		index:   BuildIndex(entries),
		stored:  stored,
		pattern: regexp.MustCompile(expr),
	}
}

// Empty reports whether the matcher has no terms.
func (m *Matcher) Empty() bool {
	return m == nil || m.pattern == nil
}

// Replace scans text once from left to right and replaces every whole-word
// occurrence of a term. Matches never overlap.
func (m *Matcher) Replace(text string) string {
	if m.Empty() || text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	copied := 0
	prevWord := false
	for i := 0; i < len(text); {
		if !prevWord {
			if loc := m.pattern.FindStringSubmatchIndex(text[i:]); loc != nil {
				start, end := i+loc[2], i+loc[3]
				b.WriteString(text[copied:start])
				b.WriteString(m.replacement(text[start:end]))
				copied = end
				i = end
				last, _ := utf8.DecodeLastRuneInString(text[start:end])
				prevWord = isWordRune(last)
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		prevWord = isWordRune(r)
		i += size
	}
	b.WriteString(text[copied:])
	return b.String()
}

func (m *Matcher) replacement(surface string) string {
	key := strings.ToLower(surface)
	def, ok := m.index[key]
	if !ok {
		return surface
	}
	// An upper-case term written exactly as stored is an acronym; its
	// definition keeps the stored casing.
	if isAllUpper(surface) && surface == m.stored[key] {
		return def
	}
	return MatchCase(surface, def)
}

// Preprocess replaces the vocabulary terms found in text with their
// definitions. It is a one-shot wrapper around NewMatcher and Replace.
func Preprocess(text string, entries []Entry) string {
	if len(entries) == 0 {
		return text
	}
	return NewMatcher(entries).Replace(text)
}
