package culture

import (
	"reflect"
	"testing"

	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
)

func driverTree() *org.Node {
	return &org.Node{
		ID: "root", Type: org.TypeRoot,
		Children: []*org.Node{
			{ID: "leadership", Type: org.TypeDepartment, IsCulturalDriver: true},
			{ID: "ops", Type: org.TypeDepartment},
		},
	}
}

func karma(values, risks []string) *person.KarmaData {
	return &person.KarmaData{PrimaryValues: values, RiskFactors: risks}
}

func TestAnalyze_TallyAndAlignment(t *testing.T) {
	people := []person.Person{
		{ID: "a", DepartmentID: "leadership", Karma: karma([]string{"trust", "Speed"}, []string{"burnout"})},
		{ID: "b", DepartmentID: "leadership", Karma: karma([]string{"TRUST ", "candor"}, nil)},
		{ID: "c", DepartmentID: "leadership"}, // no interview data, excluded
		{ID: "d", DepartmentID: "ops", Karma: karma([]string{"speed"}, nil)},
	}

	got := Analyze(driverTree(), people, []string{"Trust", "Innovation"})

	if got.DriverCount != 2 {
		t.Fatalf("driver count = %d, want 2", got.DriverCount)
	}
	// Trust tallied twice; Candor/Speed once each, alphabetical tie-break.
	want := []string{"Trust", "Candor", "Speed"}
	if !reflect.DeepEqual(got.EffectiveValues, want) {
		t.Fatalf("effective values = %v, want %v", got.EffectiveValues, want)
	}
	if !reflect.DeepEqual(got.AlignedValues, []string{"Trust"}) {
		t.Fatalf("aligned = %v", got.AlignedValues)
	}
	if !reflect.DeepEqual(got.GapValues, []string{"Innovation"}) {
		t.Fatalf("gaps = %v", got.GapValues)
	}
	if got.MatchScore != 50 {
		t.Fatalf("match score = %d, want 50", got.MatchScore)
	}
	if !reflect.DeepEqual(got.HiddenRisks, []string{"Burnout"}) {
		t.Fatalf("risks = %v", got.HiddenRisks)
	}
}

func TestAnalyze_NoDrivers(t *testing.T) {
	tree := &org.Node{ID: "root", Type: org.TypeRoot}
	people := []person.Person{
		{ID: "a", DepartmentID: "root", Karma: karma([]string{"trust"}, nil)},
	}

	got := Analyze(tree, people, []string{"Trust"})
	if got.DriverCount != 0 || len(got.EffectiveValues) != 0 {
		t.Fatalf("expected no driver data, got %+v", got)
	}
	if got.MatchScore != 0 {
		t.Fatalf("match score must be 0 with no effective values, got %d", got.MatchScore)
	}
	if !reflect.DeepEqual(got.GapValues, []string{"Trust"}) {
		t.Fatalf("declared values must all be gaps: %v", got.GapValues)
	}
}

func TestAnalyze_MatchScoreBounds(t *testing.T) {
	people := []person.Person{
		{ID: "a", DepartmentID: "leadership", Karma: karma([]string{"trust", "speed"}, nil)},
	}

	// Zero declared values: explicit 0, never NaN or a panic.
	if got := Analyze(driverTree(), people, nil); got.MatchScore != 0 {
		t.Fatalf("empty declared values must score 0, got %d", got.MatchScore)
	}

	// Full alignment stays within [0, 100].
	got := Analyze(driverTree(), people, []string{"Trust", "Speed"})
	if got.MatchScore < 0 || got.MatchScore > 100 {
		t.Fatalf("score out of bounds: %d", got.MatchScore)
	}
	if got.MatchScore != 100 {
		t.Fatalf("full alignment should score 100, got %d", got.MatchScore)
	}
}

func TestAnalyze_TruncatesTopValues(t *testing.T) {
	values := []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9", "v10"}
	people := []person.Person{
		{ID: "a", DepartmentID: "leadership", Karma: karma(values, values)},
	}
	got := Analyze(driverTree(), people, nil)
	if len(got.EffectiveValues) != maxEffectiveValues {
		t.Fatalf("effective values not capped at %d: %d", maxEffectiveValues, len(got.EffectiveValues))
	}
	if len(got.HiddenRisks) != maxHiddenRisks {
		t.Fatalf("risks not capped at %d: %d", maxHiddenRisks, len(got.HiddenRisks))
	}
}

func TestNormalizeValue(t *testing.T) {
	cases := map[string]string{
		"  trust ":        "Trust",
		"work-LIFE":       "Work-life",
		"open COMMUNICATION": "Open Communication",
		"":                "",
		"   ":             "",
	}
	for in, want := range cases {
		if got := NormalizeValue(in); got != want {
			t.Fatalf("NormalizeValue(%q) = %q, want %q", in, got, want)
		}
	}
}
