package commands

import (
	"context"
	"sort"
	"strings"

	"resumemcp/internal/application/precompute"
)

// KeySeparator joins the keys of a multi-key answer for display
const KeySeparator = " / "

// KeyMatch is one answer key ranked against a filter query
type KeyMatch struct {
	Keys  []string
	Label string
	Score int
}

// SearchKeysCommand lists the answer keys of a tool, ranked by a fuzzy query
type SearchKeysCommand struct {
	answers *precompute.Result
	Tool    string
	Query   string
}

// NewSearchKeysCommand creates a new SearchKeysCommand
func NewSearchKeysCommand(answers *precompute.Result, tool, query string) *SearchKeysCommand {
	return &SearchKeysCommand{
		answers: answers,
		Tool:    tool,
		Query:   query,
	}
}

// Execute returns every key in ascending order for an empty query, otherwise
// only the matching keys, best first
func (c *SearchKeysCommand) Execute(ctx context.Context) ([]KeyMatch, error) {
	keys, err := c.answers.Keys(c.Tool)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.Query) == "" {
		all := make([]KeyMatch, len(keys))
		for i, k := range keys {
			all[i] = KeyMatch{Keys: k, Label: KeyLabel(k)}
		}
		return all, nil
	}

	return FuzzySort(keys, c.Query), nil
}

// KeyLabel renders a key for display
func KeyLabel(keys []string) string {
	if len(keys) == 0 {
		return "(no arguments)"
	}
	return strings.Join(keys, KeySeparator)
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive chars
		}
		if i == 0 {
			score += 15 // start of string
		}
		if i > 0 && strings.ContainsRune(" ._-/", rune(target[i-1])) {
			score += 10 // after separator
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort keeps the keys matching query, best first. Ties keep key order.
func FuzzySort(keys [][]string, query string) []KeyMatch {
	scored := make([]KeyMatch, 0, len(keys))

	for _, k := range keys {
		label := KeyLabel(k)
		best := FuzzyScore(label, query)
		for _, part := range k {
			best = max(best, FuzzyScore(part, query))
		}

		if best > 0 {
			scored = append(scored, KeyMatch{
				Keys:  k,
				Label: label,
				Score: best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
