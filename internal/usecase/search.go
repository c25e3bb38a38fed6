package usecase

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const maxSuggestions = 10

// minQueryLen guards against noisy matches on 0-1 typed characters,
// counted in runes so accented input is not overweighted.
const minQueryLen = 2

// rankCatalog returns the indexes of catalog descriptions matching the
// query, best first. The query is split on whitespace; an entry matches when
// any term is a case-insensitive substring of its description, and entries
// are ranked by how many distinct terms they contain. Ties keep their
// original relative order. The result is capped at maxSuggestions.
func rankCatalog(query string, descriptions []string) []int {
	if utf8.RuneCountInString(query) < minQueryLen {
		return nil
	}
	terms := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		index int
		hits  int
	}
	matches := make([]scored, 0, len(descriptions))
	for i, desc := range descriptions {
		lower := strings.ToLower(desc)
		hits := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{index: i, hits: hits})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].hits > matches[b].hits
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.index
	}
	return out
}
