package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/report"
	"talent-pulse/internal/domain/riasec"

	"github.com/google/uuid"
)

func assessedPerson(id uuid.UUID) person.Person {
	return person.Person{
		ID:          id.String(),
		FullName:    "Dana Reyes",
		ProfileCode: "R-I-C",
		Scores: riasec.ScoreVector{
			riasec.Realistic: 9, riasec.Investigative: 7, riasec.Conventional: 5,
			riasec.Artistic: 2, riasec.Social: 1, riasec.Enterprising: 0,
		},
	}
}

func TestBuildReport_ComposesSections(t *testing.T) {
	id := uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{id: assessedPerson(id)}}
	uc := NewReportUsecase(repo, &mockJobBankRepo{}, nil, nil)

	out, err := uc.BuildReport(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.ProfileCode != "R-I-C" {
		t.Fatalf("unexpected profile code %q", out.ProfileCode)
	}
	if len(out.Sections) != 3 {
		t.Fatalf("expected 3 sections without interview data, got %d", len(out.Sections))
	}
	if out.Sections[0].Kind != report.SectionDominantTraits {
		t.Fatalf("unexpected first section %q", out.Sections[0].Kind)
	}
	if out.Scores["R"] != 9 {
		t.Fatalf("expected R=9 in letter map, got %d", out.Scores["R"])
	}
}

func TestBuildReport_NoAssessment(t *testing.T) {
	id := uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{id: {ID: id.String(), FullName: "New Hire"}}}
	uc := NewReportUsecase(repo, &mockJobBankRepo{}, nil, nil)

	if _, err := uc.BuildReport(context.Background(), id); !errors.Is(err, ErrNoAssessment) {
		t.Fatalf("expected ErrNoAssessment, got %v", err)
	}
}

func TestBuildReport_ServedFromCache(t *testing.T) {
	id := uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{id: assessedPerson(id)}}
	cache := newMockCache()
	uc := NewReportUsecase(repo, &mockJobBankRepo{}, cache, nil)

	if _, err := uc.BuildReport(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	repo.err = errors.New("db down")
	out, err := uc.BuildReport(context.Background(), id)
	if err != nil {
		t.Fatalf("expected cache hit, got err: %v", err)
	}
	if out.ProfileCode != "R-I-C" {
		t.Fatalf("cached report mismatch: %+v", out)
	}
}

func TestBuildReport_UnknownPerson(t *testing.T) {
	uc := NewReportUsecase(&mockPersonRepo{byID: map[uuid.UUID]person.Person{}}, &mockJobBankRepo{}, nil, nil)
	if _, err := uc.BuildReport(context.Background(), uuid.New()); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}
