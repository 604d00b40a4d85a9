package compat

import (
	"testing"

	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
)

func alignmentTree() *org.Node {
	return &org.Node{
		ID: "root", Name: "Acme", Type: org.TypeRoot,
		Children: []*org.Node{
			{ID: "eng", Name: "Engineering", Type: org.TypeDepartment},
			{ID: "sales", Name: "Sales", Type: org.TypeDepartment},
		},
	}
}

func TestManagerOf_SelectionRules(t *testing.T) {
	occupants := []person.Person{
		{ID: "b", JobTitle: "Engineer"},
		{ID: "a", JobTitle: "Engineering Manager"},
	}
	mgr := managerOf(&org.Node{ID: "x"}, occupants)
	if mgr == nil || mgr.ID != "a" {
		t.Fatalf("keyword title should win, got %+v", mgr)
	}

	// Cultural driver: interviewed occupant wins over keyword title.
	driver := &org.Node{ID: "x", IsCulturalDriver: true}
	occupants = []person.Person{
		{ID: "a", JobTitle: "Head of Sales"},
		{ID: "b", JobTitle: "Account Executive", Karma: &person.KarmaData{Summary: "s"}},
	}
	mgr = managerOf(driver, occupants)
	if mgr == nil || mgr.ID != "b" {
		t.Fatalf("interviewed occupant should win on driver nodes, got %+v", mgr)
	}

	// No keyword, no driver: deterministic first by ID.
	occupants = []person.Person{{ID: "z"}, {ID: "m"}}
	mgr = managerOf(&org.Node{ID: "x"}, occupants)
	if mgr == nil || mgr.ID != "m" {
		t.Fatalf("fallback should pick lowest ID, got %+v", mgr)
	}

	if managerOf(&org.Node{ID: "x"}, nil) != nil {
		t.Fatal("empty unit must have no manager")
	}
}

func TestAnalyzeLeadership_ComparesAgainstParentManager(t *testing.T) {
	people := []person.Person{
		{ID: "ceo", DepartmentID: "root", JobTitle: "CEO", ProfileCode: "E-C-S"},
		{ID: "em", DepartmentID: "eng", JobTitle: "Engineering Manager", ProfileCode: "I-R-C"},
		{ID: "dev1", DepartmentID: "eng", ProfileCode: "E-C-S"}, // perfect vs ceo
		{ID: "dev2", DepartmentID: "eng", ProfileCode: "R-I-A"}, // no overlap vs ceo
	}

	got := AnalyzeLeadership(alignmentTree(), people)

	// dev1 and dev2 compare against the CEO (parent manager), the
	// eng manager is excluded; sales has no occupants.
	if got.PairCount != 2 {
		t.Fatalf("pair count = %d, want 2", got.PairCount)
	}
	// dev1: 3 shared -> 100 (rescale path); dev2: 0 shared -> 8.
	if got.GlobalAlignmentIndex != 54.0 {
		t.Fatalf("alignment index = %v, want 54.0", got.GlobalAlignmentIndex)
	}
	if got.Distribution.Low != 1 || got.Distribution.High != 1 || got.Distribution.Mid != 0 {
		t.Fatalf("distribution wrong: %+v", got.Distribution)
	}
	if got.FrictionRate != 50.0 {
		t.Fatalf("friction rate = %v, want 50.0", got.FrictionRate)
	}
	if len(got.TeamAlignment) != 1 || got.TeamAlignment[0].NodeID != "eng" {
		t.Fatalf("team alignment = %+v", got.TeamAlignment)
	}
}

func TestAnalyzeLeadership_TeamsSortedWorstFirst(t *testing.T) {
	tree := alignmentTree()
	people := []person.Person{
		{ID: "ceo", DepartmentID: "root", JobTitle: "CEO", ProfileCode: "E-C-S"},
		{ID: "e1", DepartmentID: "eng", JobTitle: "Lead", ProfileCode: "I-R-C"},
		{ID: "e2", DepartmentID: "eng", ProfileCode: "R-I-A"}, // 8 vs ceo
		{ID: "s1", DepartmentID: "sales", JobTitle: "Head of Sales", ProfileCode: "E-C-S"},
		{ID: "s2", DepartmentID: "sales", ProfileCode: "E-C-S"}, // 100 vs ceo
	}

	got := AnalyzeLeadership(tree, people)
	if len(got.TeamAlignment) != 2 {
		t.Fatalf("expected 2 teams, got %+v", got.TeamAlignment)
	}
	if got.TeamAlignment[0].NodeID != "eng" || got.TeamAlignment[1].NodeID != "sales" {
		t.Fatalf("teams not sorted worst-first: %+v", got.TeamAlignment)
	}
}

func TestAnalyzeLeadership_EmptyOrg(t *testing.T) {
	got := AnalyzeLeadership(alignmentTree(), nil)
	if got.PairCount != 0 || got.GlobalAlignmentIndex != 0 || got.FrictionRate != 0 {
		t.Fatalf("empty org must aggregate to zeros, got %+v", got)
	}
}
