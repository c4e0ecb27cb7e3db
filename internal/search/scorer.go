package search

import (
	"strings"
	"unicode/utf8"

	"github.com/careshift/servicetree/internal/catalog"
	"github.com/careshift/servicetree/internal/textnorm"
)

// Scoring weights. Exact label matches dominate; loose keyword containment
// contributes least. Ties are broken by catalog order, never by a secondary
// score.
const (
	weightLabelExact     = 100
	weightLabelSubstring = 50
	weightDescSubstring  = 20
	weightKeywordExact   = 40
	weightKeywordSuper   = 15 // token contained in a longer keyword
	weightKeywordSub     = 10 // keyword contained in a longer token
	weightCategory       = 25
)

// document is one catalog action with its display text resolved for a single
// language and pre-normalized for comparison. Documents are built once per
// language and cached; scoring itself allocates nothing.
type document struct {
	action      catalog.Action
	label       string
	description string

	normLabel    string
	normDesc     string
	normKeywords []string
	normCategory string
}

// score computes the relevance of d against the normalized query tokens.
// Each token contributes independently; there is no token-count
// normalization, so a two-token exact-label match outranks a one-token
// partial match.
func (d *document) score(tokens []string) int {
	total := 0
	for _, tok := range tokens {
		if d.normLabel == tok {
			total += weightLabelExact
		} else if strings.Contains(d.normLabel, tok) {
			total += weightLabelSubstring
		}

		if strings.Contains(d.normDesc, tok) {
			total += weightDescSubstring
		}

		for _, kw := range d.normKeywords {
			switch {
			case kw == tok:
				total += weightKeywordExact
			case strings.Contains(kw, tok):
				total += weightKeywordSuper
			case strings.Contains(tok, kw):
				total += weightKeywordSub
			}
		}

		if strings.Contains(d.normCategory, tok) {
			total += weightCategory
		}
	}
	return total
}

// tokenize splits a raw query into normalized tokens, discarding tokens
// shorter than two characters. A nil result means the query is below the
// minimum-length threshold.
func tokenize(query string) []string {
	normalized := textnorm.Normalize(query)
	if utf8.RuneCountInString(normalized) < 2 {
		return nil
	}

	fields := strings.Fields(normalized)
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
