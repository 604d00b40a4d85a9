package report

import (
	"testing"

	"talent-pulse/internal/domain/jobs"
	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"
)

func rankedVector() riasec.ScoreVector {
	return riasec.ScoreVector{
		riasec.Realistic: 28, riasec.Investigative: 25, riasec.Artistic: 5,
		riasec.Social: 10, riasec.Enterprising: 12, riasec.Conventional: 20,
	}
}

func TestCompose_SectionOrderAndContent(t *testing.T) {
	db := jobs.Database{"CIR": {{Title: "Systems Auditor", Sector: "Finance"}}}

	sections := NewComposer().Compose(rankedVector(), db, nil)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections without interview data, got %d", len(sections))
	}

	wantKinds := []SectionKind{SectionDominantTraits, SectionPairDynamics, SectionCareers}
	for i, k := range wantKinds {
		if sections[i].Kind != k {
			t.Fatalf("section %d kind = %s, want %s", i, sections[i].Kind, k)
		}
	}

	traits := sections[0].Traits
	if len(traits) != 3 || traits[0].Dimension != riasec.Realistic || traits[1].Dimension != riasec.Investigative || traits[2].Dimension != riasec.Conventional {
		t.Fatalf("dominant traits not ranked R, I, C: %+v", traits)
	}
	if traits[0].Description == missingDimensionText {
		t.Fatal("default content should describe Realistic")
	}

	if len(sections[1].Pairs) != 3 {
		t.Fatalf("expected 3 pair blocks, got %d", len(sections[1].Pairs))
	}

	// Careers resolve through the sorted key "CIR" even though the
	// ranked code is R-I-C.
	careers := sections[2].Careers
	if len(careers) != 1 || careers[0].Title != "Systems Auditor" {
		t.Fatalf("career lookup via sorted key failed: %+v", careers)
	}
}

func TestCompose_MissingContentDegradesToPlaceholders(t *testing.T) {
	sparse := NewComposerWithContent(Content{})
	sections := sparse.Compose(rankedVector(), jobs.Database{}, nil)

	for _, tb := range sections[0].Traits {
		if tb.Description != missingDimensionText {
			t.Fatalf("expected dimension placeholder, got %q", tb.Description)
		}
	}
	for _, pb := range sections[1].Pairs {
		if pb.Narrative != missingPairText {
			t.Fatalf("expected pair placeholder, got %q", pb.Narrative)
		}
	}
	if len(sections[2].Careers) == 0 {
		t.Fatal("career section must never be empty")
	}
}

func TestCompose_BehavioralOnlyWithInterviewData(t *testing.T) {
	p := &person.Person{
		ID: "a",
		Karma: &person.KarmaData{
			Summary:       "Calm under pressure.",
			PrimaryValues: []string{"trust"},
		},
	}

	sections := NewComposer().Compose(rankedVector(), jobs.Database{}, p)
	if len(sections) != 4 {
		t.Fatalf("expected behavioral section, got %d sections", len(sections))
	}
	last := sections[3]
	if last.Kind != SectionBehavioral || last.Behavioral == nil {
		t.Fatalf("last section should be behavioral: %+v", last)
	}
	if last.Behavioral.Summary != "Calm under pressure." {
		t.Fatalf("summary lost: %+v", last.Behavioral)
	}
	// Absent sub-fields stay empty for omission, not placeholders.
	if last.Behavioral.Seniority != "" || last.Behavioral.SoftSkills != nil {
		t.Fatalf("absent fields must stay empty: %+v", last.Behavioral)
	}

	// Person without interview data gets no behavioral section.
	sections = NewComposer().Compose(rankedVector(), jobs.Database{}, &person.Person{ID: "b"})
	if len(sections) != 3 {
		t.Fatalf("person without karma must not add a section, got %d", len(sections))
	}
}

func TestPairKey(t *testing.T) {
	if k := PairKey(riasec.Realistic, riasec.Investigative); k != "IR" {
		t.Fatalf("PairKey(R, I) = %q, want IR", k)
	}
	if PairKey(riasec.Artistic, riasec.Social) != PairKey(riasec.Social, riasec.Artistic) {
		t.Fatal("PairKey must be order-independent")
	}
}

func TestDefaultContent_CoversAllDimensionsAndPairs(t *testing.T) {
	content := DefaultContent()
	for _, d := range riasec.CanonicalOrder {
		if _, ok := content.Dimensions[d]; !ok {
			t.Fatalf("no profile for dimension %s", d)
		}
	}
	dims := riasec.CanonicalOrder
	for i := 0; i < len(dims); i++ {
		for j := i + 1; j < len(dims); j++ {
			key := PairKey(dims[i], dims[j])
			if _, ok := content.PairNarratives[key]; !ok {
				t.Fatalf("no narrative for pair %s", key)
			}
		}
	}
}
