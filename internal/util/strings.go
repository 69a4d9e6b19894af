// Package util provides small string helpers shared by the CLI.
package util

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// JoinOrNone joins strings with ", " or returns "(none)" for empty slices.
func JoinOrNone(items []string) string {
	return JoinOrDefault(items, "(none)")
}

// JoinOrDefault joins strings with ", " or returns the default value for empty slices.
func JoinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// SuggestSimilar returns the candidates that input was probably meant to be.
// Candidates within maxDistance edits (case-insensitive) come first, closest
// first. When nothing is that close, candidates containing input as a
// subsequence are returned instead, best match first.
func SuggestSimilar(input string, candidates []string, maxDistance int) []string {
	if input == "" || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	lower := strings.ToLower(input)
	var close []scored
	for _, c := range candidates {
		if d := LevenshteinDistance(lower, strings.ToLower(c)); d <= maxDistance {
			close = append(close, scored{c, d})
		}
	}
	if len(close) > 0 {
		sort.SliceStable(close, func(i, j int) bool { return close[i].dist < close[j].dist })
		out := make([]string, len(close))
		for i, s := range close {
			out[i] = s.name
		}
		return out
	}

	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

// LevenshteinDistance counts the single-rune insertions, deletions and
// substitutions needed to turn a into b.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
