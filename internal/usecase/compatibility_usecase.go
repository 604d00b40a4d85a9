package usecase

import (
	"context"
	"errors"
	"log"

	"talent-pulse/internal/domain/compat"
	"talent-pulse/internal/repository"

	"github.com/google/uuid"
)

type CompatibilityUsecase interface {
	Compare(ctx context.Context, aID, bID uuid.UUID) (compat.Result, error)
}

type Compatibility struct {
	people repository.PersonRepository
	logger *log.Logger
}

func NewCompatibilityUsecase(people repository.PersonRepository, logger *log.Logger) *Compatibility {
	if logger == nil {
		logger = log.Default()
	}
	return &Compatibility{people: people, logger: logger}
}

// Compare is direction-sensitive: a is the anchor whose values are
// checked against b's.
func (u *Compatibility) Compare(ctx context.Context, aID, bID uuid.UUID) (compat.Result, error) {
	if aID == uuid.Nil || bID == uuid.Nil || aID == bID {
		return compat.Result{}, ErrInvalidInput
	}

	a, err := u.people.GetByID(ctx, aID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return compat.Result{}, ErrPersonNotFound
		}
		return compat.Result{}, ErrInternal
	}

	b, err := u.people.GetByID(ctx, bID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return compat.Result{}, ErrPersonNotFound
		}
		return compat.Result{}, ErrInternal
	}

	return compat.Compare(a, b), nil
}
