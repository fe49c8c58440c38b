package measure

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	maxSearchResults = 20
	searchBaseScore  = 1000
)

// SearchItem is a single match of [Index.Search].
type SearchItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Index ranks the units of a registry against free-text queries.
// It is immutable and safe for concurrent use by multiple goroutines.
type Index struct {
	entries []indexEntry
}

type indexEntry struct {
	id       string
	label    string
	haystack string // normalized name, symbol and aliases joined by spaces
	runes    int
}

// NewIndex returns a search index over the units of reg.
// A nil registry means [DefaultRegistry].
func NewIndex(reg *Registry) *Index {
	if reg == nil {
		reg = DefaultRegistry()
	}
	ix := &Index{entries: make([]indexEntry, len(reg.units))}
	for i, u := range reg.units {
		parts := make([]string, 0, 2+len(u.Aliases))
		parts = append(parts, normalize(u.Name), normalize(u.Symbol))
		for _, a := range u.Aliases {
			parts = append(parts, normalize(a))
		}
		h := strings.Join(parts, " ")
		ix.entries[i] = indexEntry{
			id:       u.ID,
			label:    u.Label(),
			haystack: h,
			runes:    utf8.RuneCountInString(h),
		}
	}
	return ix
}

// Search returns up to 20 units whose name, symbol or aliases contain the
// query, best first.
// Query and unit text are compared after normalization, which ignores case
// and diacritics and repairs text mis-decoded as Windows-1252.
//
// The score of a match is 1000 minus the position of the match minus the
// difference between the text and query lengths, so earlier and tighter
// matches rank higher.
// Equal scores keep registry order.
// An empty query matches nothing.
func (ix *Index) Search(query string) []SearchItem {
	q := normalize(strings.TrimSpace(query))
	if q == "" {
		return []SearchItem{}
	}
	qlen := utf8.RuneCountInString(q)
	res := []SearchItem{}
	for _, e := range ix.entries {
		i := strings.Index(e.haystack, q)
		if i < 0 {
			continue
		}
		pos := utf8.RuneCountInString(e.haystack[:i])
		res = append(res, SearchItem{
			ID:    e.id,
			Label: e.label,
			Score: searchBaseScore - pos - abs(e.runes-qlen),
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	if len(res) > maxSearchResults {
		res = res[:maxSearchResults]
	}
	return res
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var defaultIndex = NewIndex(defaultRegistry)

// SearchUnits searches the built-in catalog.
// See also method [Index.Search].
func SearchUnits(query string) []SearchItem {
	return defaultIndex.Search(query)
}
