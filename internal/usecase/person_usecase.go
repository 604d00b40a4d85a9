package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/repository"

	"github.com/google/uuid"
)

type CreatePersonInput struct {
	FullName     string
	JobTitle     string
	DepartmentID *uuid.UUID
}

type PersonUsecase interface {
	GetPerson(ctx context.Context, id uuid.UUID) (person.Person, error)
	ListPeople(ctx context.Context) ([]person.Person, error)
	CreatePerson(ctx context.Context, in CreatePersonInput) (uuid.UUID, error)
}

type Persons struct {
	people repository.PersonRepository
}

func NewPersonUsecase(people repository.PersonRepository) *Persons {
	return &Persons{people: people}
}

func (u *Persons) GetPerson(ctx context.Context, id uuid.UUID) (person.Person, error) {
	if id == uuid.Nil {
		return person.Person{}, ErrInvalidInput
	}
	p, err := u.people.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return person.Person{}, ErrPersonNotFound
		}
		return person.Person{}, ErrInternal
	}
	return p, nil
}

func (u *Persons) ListPeople(ctx context.Context) ([]person.Person, error) {
	people, err := u.people.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return people, nil
}

func (u *Persons) CreatePerson(ctx context.Context, in CreatePersonInput) (uuid.UUID, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return uuid.Nil, ErrInvalidInput
	}

	id, err := u.people.Create(ctx, fullName, strings.TrimSpace(in.JobTitle), in.DepartmentID)
	if err != nil {
		return uuid.Nil, ErrInternal
	}
	return id, nil
}
