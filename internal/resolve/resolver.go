package resolve

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Match is the outcome of resolving a free-text name against a candidate
// set: the best candidate plus a 0-100 confidence score. No acceptance
// threshold is applied here; callers decide what a low score means.
type Match struct {
	Name  string
	Score float64
}

// BestMatch scores query against every candidate with a weighted-ratio
// similarity and returns the single highest-scoring candidate. An empty
// candidate set returns the query unchanged with score 0. Ties resolve
// to the lexicographically first candidate: iteration is over the sorted
// set and only a strictly greater score replaces the current best.
func BestMatch(query string, candidates []string) Match {
	if len(candidates) == 0 {
		return Match{Name: query, Score: 0}
	}

	ordered := candidates
	if !sort.StringsAreSorted(ordered) {
		ordered = append([]string(nil), candidates...)
		sort.Strings(ordered)
	}

	best := Match{Name: ordered[0], Score: Similarity(query, ordered[0])}
	for _, candidate := range ordered[1:] {
		if score := Similarity(query, candidate); score > best.Score {
			best = Match{Name: candidate, Score: score}
		}
	}
	return best
}

// Similarity is a weighted-ratio fuzzy score in [0,100], tolerant of
// case and word order. Exact (case-insensitive) equality scores 100;
// otherwise the score is the strongest of a direct Jaro-Winkler ratio, a
// slightly discounted token-sorted ratio, and a flat substring score.
func Similarity(query, candidate string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))
	if q == c {
		return 100
	}
	if q == "" || c == "" {
		return 0
	}

	score := jaroWinkler(q, c) * 100

	if sq, sc := tokenSort(q), tokenSort(c); sq == sc {
		if s := 95.0; s > score {
			score = s
		}
	} else if s := jaroWinkler(sq, sc) * 95; s > score {
		score = s
	}

	if strings.Contains(c, q) || strings.Contains(q, c) {
		if s := 90.0; s > score {
			score = s
		}
	}

	return score
}

func jaroWinkler(a, b string) float64 {
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(score)
}

// tokenSort rewrites a name with its words in sorted order, so
// "james lebron" and "lebron james" compare equal.
func tokenSort(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}
