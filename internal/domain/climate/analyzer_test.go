package climate

import (
	"math"
	"testing"

	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
)

func climateData(overall float64, sections map[string]float64) *person.ClimateData {
	return &person.ClimateData{SectionAverages: sections, OverallAverage: overall}
}

func TestAnalyzeGlobal_NilWhenNoRespondents(t *testing.T) {
	if got := AnalyzeGlobal(nil); got != nil {
		t.Fatalf("expected nil for no people, got %+v", got)
	}
	if got := AnalyzeGlobal([]person.Person{{ID: "a"}}); got != nil {
		t.Fatalf("expected nil when nobody has climate data, got %+v", got)
	}
}

func TestAnalyzeGlobal_MeanOfMeans(t *testing.T) {
	people := []person.Person{
		{ID: "a", Climate: climateData(4.0, map[string]float64{"team": 4.5, "pay": 3.0})},
		{ID: "b", Climate: climateData(3.0, map[string]float64{"team": 3.5})},
		{ID: "c"}, // no climate data, not a respondent
	}

	got := AnalyzeGlobal(people)
	if got == nil {
		t.Fatal("expected analytics")
	}
	if got.RespondentCount != 2 {
		t.Fatalf("respondents = %d, want 2", got.RespondentCount)
	}
	if math.Abs(got.OverallAverage-3.5) > 1e-9 {
		t.Fatalf("overall = %v, want 3.5", got.OverallAverage)
	}
	// "pay" divides by its own respondent count (1), not the total.
	if math.Abs(got.SectionAverages["pay"]-3.0) > 1e-9 {
		t.Fatalf("pay = %v, want 3.0", got.SectionAverages["pay"])
	}
	if math.Abs(got.SectionAverages["team"]-4.0) > 1e-9 {
		t.Fatalf("team = %v, want 4.0", got.SectionAverages["team"])
	}
}

func TestAnalyzeByUnit_SingleRootSingleRespondent(t *testing.T) {
	tree := &org.Node{ID: "root", Name: "Acme", Type: org.TypeRoot}
	people := []person.Person{
		{ID: "a", DepartmentID: "root", Climate: climateData(4.2, nil)},
	}

	stats := AnalyzeByUnit(tree, people)
	if len(stats) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(stats))
	}
	st := stats[0]
	if st.RespondentCount != 1 || st.Score == nil || math.Abs(*st.Score-4.2) > 1e-9 {
		t.Fatalf("unexpected stat: %+v", st)
	}
}

func TestAnalyzeByUnit_StrictMembershipAndNilScores(t *testing.T) {
	tree := &org.Node{
		ID: "root", Name: "Acme", Type: org.TypeRoot,
		Children: []*org.Node{
			{ID: "eng", Name: "Engineering", Type: org.TypeDepartment,
				Children: []*org.Node{{ID: "platform", Name: "Platform", Type: org.TypeTeam}}},
		},
	}
	people := []person.Person{
		{ID: "a", DepartmentID: "platform", Climate: climateData(4.0, nil)},
		{ID: "b", DepartmentID: "eng"}, // member, but no climate data
	}

	stats := AnalyzeByUnit(tree, people)
	if len(stats) != 3 {
		t.Fatalf("every node must be reported, got %d entries", len(stats))
	}

	byID := make(map[string]UnitStat, len(stats))
	for _, st := range stats {
		byID[st.NodeID] = st
	}

	// Descendant respondents must not roll up into eng.
	if st := byID["eng"]; st.Score != nil || st.RespondentCount != 0 {
		t.Fatalf("eng should have no respondents: %+v", st)
	}
	if st := byID["root"]; st.Score != nil {
		t.Fatalf("root should have nil score: %+v", st)
	}
	if st := byID["platform"]; st.Score == nil || *st.Score != 4.0 {
		t.Fatalf("platform stat wrong: %+v", st)
	}
}
