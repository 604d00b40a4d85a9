package culture

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
)

const (
	maxEffectiveValues = 8
	maxHiddenRisks     = 5
)

// Analysis compares declared organizational values with the values
// observed among cultural-driver occupants. DriverCount lets callers
// distinguish "no data" from "zero alignment".
type Analysis struct {
	DriverCount     int      `json:"driver_count"`
	EffectiveValues []string `json:"effective_values"`
	HiddenRisks     []string `json:"hidden_risks"`
	AlignedValues   []string `json:"aligned_values"`
	GapValues       []string `json:"gap_values"`
	MatchScore      int      `json:"match_score"`
}

// Analyze walks the org tree for cultural-driver units, tallies the
// normalized primary values and risk factors of their interviewed
// occupants, and scores the overlap with the declared values. People
// without interview data are excluded entirely, not counted as zero.
func Analyze(root *org.Node, people []person.Person, declaredValues []string) Analysis {
	driverIDs := make(map[string]bool)
	org.Walk(root, func(n, _ *org.Node) {
		if n.IsCulturalDriver {
			driverIDs[n.ID] = true
		}
	})

	valueFreq := make(map[string]int)
	riskFreq := make(map[string]int)
	driverCount := 0
	for _, p := range people {
		if !driverIDs[p.DepartmentID] || p.Karma == nil {
			continue
		}
		driverCount++
		for _, v := range p.Karma.PrimaryValues {
			if nv := NormalizeValue(v); nv != "" {
				valueFreq[nv]++
			}
		}
		for _, r := range p.Karma.RiskFactors {
			if nr := NormalizeValue(r); nr != "" {
				riskFreq[nr]++
			}
		}
	}

	effective := topByFrequency(valueFreq, maxEffectiveValues)
	risks := topByFrequency(riskFreq, maxHiddenRisks)

	aligned := make([]string, 0, len(effective))
	for _, ev := range effective {
		for _, dv := range declaredValues {
			if strings.EqualFold(strings.TrimSpace(dv), ev) {
				aligned = append(aligned, ev)
				break
			}
		}
	}

	gaps := make([]string, 0, len(declaredValues))
	for _, dv := range declaredValues {
		matched := false
		for _, ev := range effective {
			if strings.EqualFold(strings.TrimSpace(dv), ev) {
				matched = true
				break
			}
		}
		if !matched {
			gaps = append(gaps, dv)
		}
	}

	score := 0
	if len(declaredValues) > 0 {
		score = int(math.Round(100 * float64(len(aligned)) / float64(len(declaredValues))))
	}

	return Analysis{
		DriverCount:     driverCount,
		EffectiveValues: effective,
		HiddenRisks:     risks,
		AlignedValues:   aligned,
		GapValues:       gaps,
		MatchScore:      score,
	}
}

// NormalizeValue trims and title-cases a free-text value string so
// that "trust", "Trust " and "TRUST" tally together.
func NormalizeValue(s string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, f := range fields {
		runes := []rune(f)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}

// topByFrequency returns the n most frequent keys, most frequent
// first. Equal counts order alphabetically so the truncation is
// deterministic.
func topByFrequency(freq map[string]int, n int) []string {
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
