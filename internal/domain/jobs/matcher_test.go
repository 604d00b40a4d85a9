package jobs

import (
	"testing"

	"talent-pulse/internal/domain/riasec"
)

func testDB() Database {
	return Database{
		"IRS": {
			{Title: "Clinical Researcher", Sector: "Health"},
			{Title: "Field Scientist", Sector: "Science"},
		},
		"AIR": {
			{Title: "Industrial Designer", Sector: "Design"},
		},
		"EIR": {
			{Title: "Technical Founder", Sector: "Business"},
			{Title: "Field Scientist", Sector: "Engineering"},
		},
		"CES": {
			{Title: "Account Manager", Sector: "Sales"},
		},
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"R-I-C": "CIR",
		"ric":   "CIR",
		"S-E-C": "CES",
		"IRS":   "IRS",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuggest_ExactMatch(t *testing.T) {
	got := Suggest("S-I-R", testDB())
	if len(got) != 2 || got[0].Title != "Clinical Researcher" {
		t.Fatalf("expected exact IRS match in insertion order, got %v", got)
	}
}

func TestSuggest_PartialBroadening(t *testing.T) {
	// No exact CIR key; top two letters I and R match AIR, EIR, IRS.
	got := Suggest("I-R-C", testDB())
	if len(got) == 0 {
		t.Fatal("expected partial matches")
	}
	for _, s := range got {
		if s.Title == "General professional roles" {
			t.Fatalf("partial matches exist, fallback must not be generic: %v", got)
		}
	}

	// "Field Scientist" appears under IRS and EIR; keys scan in sorted
	// order (AIR, EIR, IRS) so the IRS entry wins.
	seen := map[string]int{}
	for _, s := range got {
		seen[s.Title]++
		if s.Title == "Field Scientist" && s.Sector != "Science" {
			t.Fatalf("last-seen dedupe broken: got sector %q", s.Sector)
		}
	}
	for title, n := range seen {
		if n > 1 {
			t.Fatalf("title %q duplicated %d times", title, n)
		}
	}
}

func TestSuggest_PartialCap(t *testing.T) {
	db := Database{}
	keys := []string{"AIR", "EIR", "IRS", "CIR", "IRC"}
	for i, k := range keys {
		for j := 0; j < 3; j++ {
			db[k] = append(db[k], Suggestion{Title: k + string(rune('a'+i)) + string(rune('0'+j))})
		}
	}
	got := partialMatches("I-R-A", db)
	if len(got) > maxPartialResults {
		t.Fatalf("partial results not capped: %d", len(got))
	}
}

func TestSuggest_GenericPlaceholder(t *testing.T) {
	got := Suggest("XYZ", Database{})
	if len(got) != 1 || got[0].Title != "General professional roles" {
		t.Fatalf("expected single generic placeholder, got %v", got)
	}
}

func TestBenchmark_ExplicitIdealVerbatim(t *testing.T) {
	ideal := riasec.ScoreVector{riasec.Realistic: 30}
	job := Suggestion{Title: "x", IdealScore: ideal}
	got := Benchmark(job, "R-I-C")
	if got[riasec.Realistic] != 30 {
		t.Fatalf("explicit ideal not returned verbatim: %v", got)
	}
}

func TestBenchmark_SyntheticVector(t *testing.T) {
	got := Benchmark(Suggestion{Title: "x"}, "R-I-C")
	if got[riasec.Realistic] != 26 || got[riasec.Investigative] != 22 || got[riasec.Conventional] != 18 {
		t.Fatalf("synthetic overrides wrong: %v", got)
	}
	if got[riasec.Artistic] != 10 || got[riasec.Social] != 10 || got[riasec.Enterprising] != 10 {
		t.Fatalf("baseline should be 10: %v", got)
	}
}
