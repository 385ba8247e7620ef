package matching

import (
	"regexp"
	"sort"
	"strings"
)

var (
	locodePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{3}$`)
	scacPattern   = regexp.MustCompile(`^[A-Z0-9]{2,4}$`)
)

// LooksLikeLocode reports whether the query, stripped to alnum uppercase, is a UN/LOCODE.
func LooksLikeLocode(query string) bool {
	return locodePattern.MatchString(CodeForm(query))
}

// LooksLikeSCAC reports whether the query, stripped to alnum uppercase, is a SCAC.
func LooksLikeSCAC(query string) bool {
	return scacPattern.MatchString(CodeForm(query))
}

// Candidate is a port or carrier reduced to the fields the ranker compares.
// Country and ID are carried through untouched for the caller.
type Candidate struct {
	Name    string
	Code    string
	Country string
	Size    int
	ID      string

	// Aliases are alternative names; a candidate scores as its best name.
	Aliases []string
}

// Query is a precomputed view of a search string.
type Query struct {
	Raw    string
	Norm   string
	Code   string
	Tokens []string
}

// NewQuery normalizes a raw query once for repeated scoring.
func NewQuery(raw string) Query {
	return Query{
		Raw:    raw,
		Norm:   NormalizeText(raw),
		Code:   CodeForm(raw),
		Tokens: Tokenize(raw),
	}
}

// Features are the boolean match signals between a query and a candidate.
type Features struct {
	ExactCode  bool
	ExactName  bool
	StartsWith bool
	Contains   bool
}

// Match is a candidate with its score and normalized name.
type Match struct {
	Candidate
	Score    int
	normName string
}

// Detect computes the match features of candidate c against q.
func Detect(c Candidate, q Query) Features {
	name := NormalizeText(c.Name)
	return Features{
		ExactCode:  c.Code != "" && CodeForm(c.Code) == q.Code,
		ExactName:  name == q.Norm,
		StartsWith: strings.HasPrefix(StripPortNoise(c.Name), q.Norm),
		Contains:   tokensMatch(q.Tokens, Tokenize(c.Name)) || strings.Contains(name, q.Norm),
	}
}

// tokensMatch reports whether every query token equals or prefixes some name token.
func tokensMatch(queryTokens, nameTokens []string) bool {
	if len(queryTokens) == 0 {
		return false
	}
	for _, qt := range queryTokens {
		found := false
		for _, nt := range nameTokens {
			if strings.HasPrefix(nt, qt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Score maps features to 0..4. Code-leading queries put an exact code first;
// name-leading queries demote it below every name signal.
func Score(f Features, codeLeading bool) int {
	if codeLeading {
		switch {
		case f.ExactCode:
			return 4
		case f.ExactName:
			return 3
		case f.StartsWith:
			return 2
		case f.Contains:
			return 1
		}
		return 0
	}

	switch {
	case f.ExactName:
		return 4
	case f.StartsWith:
		return 3
	case f.Contains:
		return 2
	case f.ExactCode:
		return 1
	}
	return 0
}

// OrderPorts scores every candidate and sorts by (-score, -size, normalized name).
func OrderPorts(candidates []Candidate, query string, codeLeading bool) []Match {
	matches := score(candidates, query, codeLeading)
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		return a.normName < b.normName
	})
	return matches
}

// OrderCarriers scores every candidate and sorts by (-score, normalized name).
// Carriers have no size, so there is no size tiebreak.
func OrderCarriers(candidates []Candidate, query string, codeLeading bool) []Match {
	matches := score(candidates, query, codeLeading)
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.normName < b.normName
	})
	return matches
}

// RankPorts returns the best port candidate. ok is false for an empty list.
func RankPorts(candidates []Candidate, query string, codeLeading bool) (best Candidate, ok bool) {
	return first(OrderPorts(candidates, query, codeLeading))
}

// RankCarriers returns the best carrier candidate. ok is false for an empty list.
func RankCarriers(candidates []Candidate, query string, codeLeading bool) (best Candidate, ok bool) {
	return first(OrderCarriers(candidates, query, codeLeading))
}

func score(candidates []Candidate, query string, codeLeading bool) []Match {
	q := NewQuery(query)
	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		best := Score(Detect(c, q), codeLeading)
		for _, alias := range c.Aliases {
			if best == 4 {
				break
			}
			alt := Score(Detect(Candidate{Name: alias, Code: c.Code}, q), codeLeading)
			if alt > best {
				best = alt
			}
		}
		matches[i] = Match{
			Candidate: c,
			Score:     best,
			normName:  NormalizeText(c.Name),
		}
	}
	return matches
}

// SearchPorts returns up to limit ports with a positive score, best first.
// A blank query matches nothing.
func SearchPorts(candidates []Candidate, query string, limit int) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	return positive(OrderPorts(candidates, query, LooksLikeLocode(query)), limit)
}

// SearchCarriers returns up to limit carriers with a positive score, best first.
// A blank query matches nothing.
func SearchCarriers(candidates []Candidate, query string, limit int) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	return positive(OrderCarriers(candidates, query, LooksLikeSCAC(query)), limit)
}

func positive(matches []Match, limit int) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Score <= 0 {
			break
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func first(matches []Match) (Candidate, bool) {
	if len(matches) == 0 {
		return Candidate{}, false
	}
	return matches[0].Candidate, true
}
