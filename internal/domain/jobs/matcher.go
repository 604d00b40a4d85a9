package jobs

import (
	"sort"
	"strings"

	"talent-pulse/internal/domain/riasec"
)

// Suggestion is one career suggestion from the job bank.
type Suggestion struct {
	Title  string `json:"title"`
	Sector string `json:"sector"`

	// IdealScore is an optional explicit benchmark vector. Nil means
	// Benchmark synthesizes one from the profile code.
	IdealScore riasec.ScoreVector `json:"ideal_score,omitempty"`
}

// Database maps a normalized (alphabetically sorted) three-letter
// profile key to its suggestions. Value order is preserved for
// display. Callers may hot-swap the database between calls; nothing
// here caches it.
type Database map[string][]Suggestion

const maxPartialResults = 8

// NormalizeKey reduces a profile code to its lookup key: the dimension
// letters, uppercased and sorted alphabetically.
func NormalizeKey(profileCode string) string {
	letters := riasec.CodeLetters(profileCode)
	parts := make([]string, 0, len(letters))
	for _, d := range letters {
		parts = append(parts, string(d))
	}
	sort.Strings(parts)
	return strings.Join(parts, "")
}

// Suggest resolves suggestions for a profile code with graceful
// broadening: exact key match first, then the union of every key
// containing both of the code's top two letters, then a single generic
// placeholder. It never returns an empty list.
func Suggest(profileCode string, db Database) []Suggestion {
	if exact, ok := db[NormalizeKey(profileCode)]; ok && len(exact) > 0 {
		out := make([]Suggestion, len(exact))
		copy(out, exact)
		return out
	}

	if partial := partialMatches(profileCode, db); len(partial) > 0 {
		return partial
	}

	return []Suggestion{{
		Title:  "General professional roles",
		Sector: "General",
	}}
}

// partialMatches unions the suggestions of every key containing both
// of the code's top two (ranked first and second) letters. Duplicate
// titles collapse, last seen wins. Keys are visited in sorted order so
// the result does not depend on map iteration.
func partialMatches(profileCode string, db Database) []Suggestion {
	letters := riasec.CodeLetters(profileCode)
	if len(letters) < 2 {
		return nil
	}
	first, second := string(letters[0]), string(letters[1])

	keys := make([]string, 0, len(db))
	for k := range db {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	order := make([]string, 0, maxPartialResults)
	byTitle := make(map[string]Suggestion)
	for _, k := range keys {
		ku := strings.ToUpper(k)
		if !strings.Contains(ku, first) || !strings.Contains(ku, second) {
			continue
		}
		for _, s := range db[k] {
			if _, ok := byTitle[s.Title]; !ok {
				order = append(order, s.Title)
			}
			byTitle[s.Title] = s
		}
	}

	if len(order) > maxPartialResults {
		order = order[:maxPartialResults]
	}
	out := make([]Suggestion, 0, len(order))
	for _, title := range order {
		out = append(out, byTitle[title])
	}
	return out
}

// Benchmark returns the comparison-chart vector for a job against a
// profile code. An explicit ideal vector wins verbatim; otherwise a
// synthetic one is built: 10 everywhere, with the code's first, second
// and third letters raised to 26, 22 and 18. Used only for charts,
// never for matching.
func Benchmark(job Suggestion, profileCode string) riasec.ScoreVector {
	if job.IdealScore != nil {
		return job.IdealScore
	}

	v := riasec.NewScoreVector()
	for _, d := range riasec.CanonicalOrder {
		v[d] = 10
	}
	weights := [3]int{26, 22, 18}
	for i, d := range riasec.CodeLetters(profileCode) {
		if i >= len(weights) {
			break
		}
		v[d] = weights[i]
	}
	return v
}
