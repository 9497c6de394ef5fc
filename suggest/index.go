package suggest

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is a prefix tree over a domain list.
//
// Match follows the ComputeMatches contract. Duplicate domains are stored once.
type Index struct {
	trie    *patricia.Trie
	domains []string
}

// NewIndex indexes exactly the given domains. Callers wanting the default
// fallback pass the list through Resolve first.
func NewIndex(domains []string) *Index {
	ix := &Index{trie: patricia.NewTrie()}
	for _, d := range domains {
		if d == "" {
			continue
		}
		if ix.trie.Insert(patricia.Prefix(d), len(ix.domains)) {
			ix.domains = append(ix.domains, d)
		}
	}
	return ix
}

// Domains returns the indexed domains in insertion order.
func (ix *Index) Domains() []string {
	if ix == nil {
		return nil
	}
	return append([]string(nil), ix.domains...)
}

// Len reports the number of distinct indexed domains.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.domains)
}

func (ix *Index) Match(localPart string) []Suggestion {
	if ix == nil || len(ix.domains) == 0 {
		return nil
	}

	var out []Suggestion
	// The visitor never returns an error, so neither does the walk.
	_ = ix.trie.VisitSubtree(patricia.Prefix(localPart), func(p patricia.Prefix, _ patricia.Item) error {
		if s, ok := matchDomain(localPart, string(p)); ok {
			out = append(out, s)
		}
		return nil
	})
	sortSuggestions(out)
	return out
}
