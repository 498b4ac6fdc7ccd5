package match

import (
	"fmt"
	"strings"
)

// MinSimilarity is the similarity a candidate needs to be suggested.
const MinSimilarity = 0.6

// NormalizeIdent folds case and drops '_', '-' and spaces.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Suggest returns the candidate most similar to name, or "" when none
// reaches MinSimilarity. Ties go to the earlier candidate; name itself is
// never suggested.
func Suggest(name string, candidates []string) string {
	norm := NormalizeIdent(name)

	best, bestScore := "", MinSimilarity

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(norm, NormalizeIdent(c))
		if score > bestScore || (score == bestScore && best == "") {
			best, bestScore = c, score
		}
	}

	return best
}

// DidYouMean formats the suggestion for name as ` (did you mean "x"?)`, or
// returns "" when there is none. It is meant to be appended to messages.
func DidYouMean(name string, candidates []string) string {
	s := Suggest(name, candidates)
	if s == "" {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q?)", s)
}
