package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-pulse/internal/domain/person"

	"github.com/google/uuid"
)

type mockAnalyzer struct {
	karma person.KarmaData
	err   error
}

func (m mockAnalyzer) AnalyzeTranscript(context.Context, string) (person.KarmaData, error) {
	if m.err != nil {
		return person.KarmaData{}, m.err
	}
	return m.karma, nil
}

func TestInterviewSubmit_StoresAnalyzedKarma(t *testing.T) {
	id := uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{id: {ID: id.String()}}}
	analyzer := mockAnalyzer{karma: person.KarmaData{
		Summary:       "Calm, structured communicator.",
		PrimaryValues: []string{"Ownership"},
	}}
	uc := NewInterviewUsecase(repo, analyzer, newMockCache(), nil)

	res, err := uc.SubmitTranscript(context.Background(), id, "full transcript")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Degraded {
		t.Fatalf("expected non-degraded result")
	}
	if repo.savedKarma == nil || repo.savedKarma.Summary != analyzer.karma.Summary {
		t.Fatalf("analyzed karma not persisted: %+v", repo.savedKarma)
	}
}

func TestInterviewSubmit_FallsBackWhenAnalyzerDown(t *testing.T) {
	id := uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{id: {ID: id.String()}}}
	uc := NewInterviewUsecase(repo, mockAnalyzer{err: errors.New("connection refused")}, nil, nil)

	res, err := uc.SubmitTranscript(context.Background(), id, "full transcript")
	if err != nil {
		t.Fatalf("intake must not fail when analyzer is down, got %v", err)
	}
	if !res.Degraded {
		t.Fatalf("expected degraded result")
	}
	if repo.savedKarma == nil || len(repo.savedKarma.RiskFactors) == 0 {
		t.Fatalf("fallback karma not persisted: %+v", repo.savedKarma)
	}
	if repo.savedKarma.RiskFactors[0] != "Insufficient data" {
		t.Fatalf("unexpected fallback risk factors: %v", repo.savedKarma.RiskFactors)
	}
}

func TestInterviewSubmit_EmptyTranscript(t *testing.T) {
	uc := NewInterviewUsecase(&mockPersonRepo{}, mockAnalyzer{}, nil, nil)
	if _, err := uc.SubmitTranscript(context.Background(), uuid.New(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
