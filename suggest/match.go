package suggest

import (
	"sort"
	"strings"
)

// Suggestion is a domain whose prefix matches the typed local part.
//
// Completion is the untyped remainder of Domain and is never empty.
type Suggestion struct {
	Domain     string
	Completion string
}

// Matcher produces suggestions for the text typed after "@".
type Matcher interface {
	Match(localPart string) []Suggestion
}

// List matches against a plain domain slice with ComputeMatches.
type List []string

func (l List) Match(localPart string) []Suggestion { return ComputeMatches(localPart, l) }

// ComputeMatches returns the domains strictly longer than localPart that start
// with it, sorted ascending by domain.
func ComputeMatches(localPart string, domains []string) []Suggestion {
	var out []Suggestion
	for _, d := range domains {
		if s, ok := matchDomain(localPart, d); ok {
			out = append(out, s)
		}
	}
	sortSuggestions(out)
	return out
}

// SplitLocalPart extracts the text after the first "@" in input.
//
// ok is false when input has no "@" or nothing follows it. Any further "@"
// characters stay in the returned text; no domain contains one, so such input
// yields no matches rather than an error.
func SplitLocalPart(input string) (localPart string, ok bool) {
	_, after, found := strings.Cut(input, "@")
	if !found || after == "" {
		return "", false
	}
	return after, true
}

func matchDomain(localPart, domain string) (Suggestion, bool) {
	if len(domain) <= len(localPart) || !strings.HasPrefix(domain, localPart) {
		return Suggestion{}, false
	}
	return Suggestion{Domain: domain, Completion: domain[len(localPart):]}, true
}

func sortSuggestions(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Domain < s[j].Domain })
}
