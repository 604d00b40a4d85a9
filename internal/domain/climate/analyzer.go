package climate

import (
	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
)

// Analytics is the organization-wide climate aggregate. Per-section
// averages divide by the number of respondents who answered that
// section, and the overall figure is a mean of each respondent's own
// overall average (a mean of means), not a re-derivation from raw
// answers.
type Analytics struct {
	RespondentCount int                `json:"respondent_count"`
	SectionAverages map[string]float64 `json:"section_averages"`
	OverallAverage  float64            `json:"overall_average"`
}

// UnitStat is one org unit's climate aggregate. Score is nil when the
// unit has no respondents; callers must not read nil as zero.
type UnitStat struct {
	NodeID          string       `json:"node_id"`
	NodeName        string       `json:"node_name"`
	Type            org.NodeType `json:"type"`
	Score           *float64     `json:"score"`
	RespondentCount int          `json:"respondent_count"`
}

// AnalyzeGlobal aggregates all climate respondents. Nil (absence, not
// a zero-value object) when nobody has climate data.
func AnalyzeGlobal(people []person.Person) *Analytics {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	overallSum := 0.0
	respondents := 0

	for _, p := range people {
		if p.Climate == nil {
			continue
		}
		respondents++
		overallSum += p.Climate.OverallAverage
		for section, avg := range p.Climate.SectionAverages {
			sums[section] += avg
			counts[section]++
		}
	}

	if respondents == 0 {
		return nil
	}

	sections := make(map[string]float64, len(sums))
	for section, sum := range sums {
		sections[section] = sum / float64(counts[section])
	}

	return &Analytics{
		RespondentCount: respondents,
		SectionAverages: sections,
		OverallAverage:  overallSum / float64(respondents),
	}
}

// AnalyzeByUnit emits one stat per org node in walk order, matching
// people whose department is exactly that node (descendants are not
// rolled up).
func AnalyzeByUnit(root *org.Node, people []person.Person) []UnitStat {
	stats := make([]UnitStat, 0)
	org.Walk(root, func(n, _ *org.Node) {
		sum := 0.0
		count := 0
		for _, p := range people {
			if p.DepartmentID != n.ID || p.Climate == nil {
				continue
			}
			sum += p.Climate.OverallAverage
			count++
		}

		stat := UnitStat{
			NodeID:          n.ID,
			NodeName:        n.Name,
			Type:            n.Type,
			RespondentCount: count,
		}
		if count > 0 {
			avg := sum / float64(count)
			stat.Score = &avg
		}
		stats = append(stats, stat)
	})
	return stats
}
