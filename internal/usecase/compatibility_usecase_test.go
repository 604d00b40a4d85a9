package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-pulse/internal/domain/person"

	"github.com/google/uuid"
)

func TestCompatibilityCompare_IdenticalProfiles(t *testing.T) {
	aID, bID := uuid.New(), uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{
		aID: {ID: aID.String(), ProfileCode: "E-C-I"},
		bID: {ID: bID.String(), ProfileCode: "E-C-I"},
	}}
	uc := NewCompatibilityUsecase(repo, nil)

	res, err := uc.Compare(context.Background(), aID, bID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 100 {
		t.Fatalf("expected 100 for identical codes, got %d", res.Score)
	}
}

func TestCompatibilityCompare_MissingProfileDegrades(t *testing.T) {
	aID, bID := uuid.New(), uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{
		aID: {ID: aID.String(), ProfileCode: "E-C-I"},
		bID: {ID: bID.String()},
	}}
	uc := NewCompatibilityUsecase(repo, nil)

	res, err := uc.Compare(context.Background(), aID, bID)
	if err != nil {
		t.Fatalf("missing profile must not be an error, got %v", err)
	}
	if res.Score != 0 || len(res.Reasons) == 0 {
		t.Fatalf("expected zero score with explanatory reason, got %+v", res)
	}
}

func TestCompatibilityCompare_SamePersonRejected(t *testing.T) {
	id := uuid.New()
	uc := NewCompatibilityUsecase(&mockPersonRepo{}, nil)
	if _, err := uc.Compare(context.Background(), id, id); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompatibilityCompare_UnknownPerson(t *testing.T) {
	aID := uuid.New()
	repo := &mockPersonRepo{byID: map[uuid.UUID]person.Person{aID: {ID: aID.String(), ProfileCode: "E-C-I"}}}
	uc := NewCompatibilityUsecase(repo, nil)
	if _, err := uc.Compare(context.Background(), aID, uuid.New()); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}
