package search

import (
	"sort"
	"strings"
)

// Match-kind multipliers: an exact field match contributes 3x the field
// weight, a prefix match 2x, a substring match 1x.
const (
	exactMultiplier  = 3
	prefixMultiplier = 2
	substrMultiplier = 1
)

// Candidate is one type-homogeneous search result awaiting ranking. Name is
// the primary display name, OwnerName the owning hospital or branch, and
// FacetNames the nested facet names searchable at the lowest weight.
type Candidate struct {
	ID         string
	Name       string
	OwnerName  string
	FacetNames []string
	Payload    any
}

// Engine ranks candidates by weighted relevance. Weights rank the primary
// name highest, then the owning entity's name, then nested facet names.
type Engine struct {
	nameWeight  int
	ownerWeight int
	facetWeight int
}

// NewEngine creates a ranking engine with the default field weights.
func NewEngine() *Engine {
	return &Engine{
		nameWeight:  5,
		ownerWeight: 3,
		facetWeight: 1,
	}
}

// Rank orders candidates for display. With a free-text query, candidates are
// scored and zero-score candidates excluded; order is score descending. With
// no query every candidate survives in alphabetical order. Ties always break
// by id ascending so pagination is reproducible.
func (e *Engine) Rank(candidates []Candidate, query string) []Candidate {
	query = strings.TrimSpace(query)

	if query == "" {
		out := make([]Candidate, len(candidates))
		copy(out, candidates)
		sort.SliceStable(out, func(i, j int) bool {
			ni, nj := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
			if ni != nj {
				return ni < nj
			}
			return out[i].ID < out[j].ID
		})
		return out
	}

	type scored struct {
		candidate Candidate
		score     int
	}
	kept := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if s := e.Score(c, query); s > 0 {
			kept = append(kept, scored{candidate: c, score: s})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].candidate.ID < kept[j].candidate.ID
	})

	out := make([]Candidate, len(kept))
	for i, s := range kept {
		out[i] = s.candidate
	}
	return out
}

// Score accumulates the weighted relevance of one candidate for a query.
func (e *Engine) Score(c Candidate, query string) int {
	score := fieldScore(c.Name, query) * e.nameWeight
	score += fieldScore(c.OwnerName, query) * e.ownerWeight
	for _, name := range c.FacetNames {
		score += fieldScore(name, query) * e.facetWeight
	}
	return score
}

// fieldScore rates one field against the query: exact 3, prefix 2,
// substring 1, no match 0.
func fieldScore(value, query string) int {
	v := strings.ToLower(strings.TrimSpace(value))
	q := strings.ToLower(strings.TrimSpace(query))
	if v == "" || q == "" {
		return 0
	}
	switch {
	case v == q:
		return exactMultiplier
	case strings.HasPrefix(v, q):
		return prefixMultiplier
	case strings.Contains(v, q):
		return substrMultiplier
	default:
		return 0
	}
}
