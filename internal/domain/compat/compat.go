package compat

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"
)

const (
	maxTraitPoints = 60
	maxValuePoints = 40
)

// Result is a 0-100 fit estimate between two people with
// human-readable reasons.
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Compare scores pairwise fit from profile-code overlap and value
// overlap. The trait component is symmetric; the value component is
// evaluated from a's side only, so Compare(a, b) and Compare(b, a)
// may differ when value lists differ in size.
func Compare(a, b person.Person) Result {
	if !a.HasProfile() || !b.HasProfile() {
		return Result{Score: 0, Reasons: []string{"insufficient data to compare profiles"}}
	}

	shared := sharedTraits(a.ProfileCode, b.ProfileCode)
	traitScore := traitPoints(len(shared))
	reasons := []string{traitReason(shared)}

	if !a.HasValues() || !b.HasValues() {
		rescaled := int(math.Round(float64(traitScore) / maxTraitPoints * 100))
		reasons = append(reasons, "value data missing on one side, score based on traits only")
		return Result{Score: clampScore(rescaled), Reasons: reasons}
	}

	matched := 0
	for _, av := range a.Karma.PrimaryValues {
		if valueMatches(av, b.Karma.PrimaryValues) {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(a.Karma.PrimaryValues))
	valueScore := math.Min(ratio*60, maxValuePoints)
	reasons = append(reasons, fmt.Sprintf("%d of %d core values shared", matched, len(a.Karma.PrimaryValues)))

	total := int(math.Round(math.Min(float64(traitScore)+valueScore, 100)))
	return Result{Score: clampScore(total), Reasons: reasons}
}

// sharedTraits treats both codes as unordered letter sets and returns
// the intersection in canonical order.
func sharedTraits(codeA, codeB string) []riasec.Dimension {
	inA := make(map[riasec.Dimension]bool)
	for _, d := range riasec.CodeLetters(codeA) {
		inA[d] = true
	}
	inB := make(map[riasec.Dimension]bool)
	for _, d := range riasec.CodeLetters(codeB) {
		inB[d] = true
	}

	shared := make([]riasec.Dimension, 0, 3)
	for _, d := range riasec.CanonicalOrder {
		if inA[d] && inB[d] {
			shared = append(shared, d)
		}
	}
	return shared
}

func traitPoints(shared int) int {
	switch {
	case shared >= 3:
		return 60
	case shared == 2:
		return 45
	case shared == 1:
		return 20
	}
	// Never zero: no trait overlap still isn't total incompatibility.
	return 5
}

func traitReason(shared []riasec.Dimension) string {
	if len(shared) == 0 {
		return "no dominant traits in common"
	}
	names := make([]string, 0, len(shared))
	for _, d := range shared {
		names = append(names, d.Name())
	}
	return "shared dominant traits: " + strings.Join(names, ", ")
}

// valueMatches checks a's value against every value of b with a
// case-insensitive substring match in either direction.
func valueMatches(av string, bv []string) bool {
	a := strings.ToLower(strings.TrimSpace(av))
	if a == "" {
		return false
	}
	for _, raw := range bv {
		b := strings.ToLower(strings.TrimSpace(raw))
		if b == "" {
			continue
		}
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return true
		}
	}
	return false
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// sortPeopleByID gives the deterministic occupant order used by the
// leadership aggregate's fallback rules.
func sortPeopleByID(people []person.Person) []person.Person {
	out := make([]person.Person, len(people))
	copy(out, people)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
