package title

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Confidence represents the confidence level of a title match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is one ranked candidate from Rank.
type Match struct {
	Index      int     // Position in the candidates slice
	Title      string  // The candidate title as given
	Score      float64 // Jaro-Winkler similarity score (0.0-1.0)
	Confidence Confidence
}

// Rank scores every candidate title against the query and returns those
// at or above low confidence, best first. Jaro-Winkler favors shared
// prefixes, which suits titles. Exact-substring hits are promoted so a
// short query like "dune" still beats longer near-misses.
func Rank(query string, candidates []string) []Match {
	cleanQuery := Clean(query)
	if cleanQuery == "" {
		return nil
	}

	var matches []Match
	for i, candidate := range candidates {
		cleanCandidate := Clean(candidate)

		score := float64(edlib.JaroWinklerSimilarity(cleanQuery, cleanCandidate))
		if containsWord(cleanCandidate, cleanQuery) && score < 0.95 {
			score = 0.95
		}
		if score < 0.70 {
			continue
		}

		m := Match{Index: i, Title: candidate, Score: score}
		switch {
		case score >= 0.95:
			m.Confidence = ConfidenceHigh
		case score >= 0.85:
			m.Confidence = ConfidenceMedium
		default:
			m.Confidence = ConfidenceLow
		}
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches
}

// containsWord reports whether the cleaned candidate contains the cleaned
// query as a substring. Very short queries are excluded to avoid noise.
func containsWord(candidate, query string) bool {
	return len(query) >= 3 && strings.Contains(candidate, query)
}
