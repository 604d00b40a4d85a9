package usecase

import (
	"context"
	"encoding/json"
	"time"

	"talent-pulse/internal/domain/jobs"
	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"
	"talent-pulse/internal/repository"

	"github.com/google/uuid"
)

type mockPersonRepo struct {
	byID   map[uuid.UUID]person.Person
	listed []person.Person
	err    error

	savedAssessmentCode string
	savedScores         riasec.ScoreVector
	savedKarma          *person.KarmaData
	savedClimate        *person.ClimateData
}

func (m *mockPersonRepo) GetByID(_ context.Context, id uuid.UUID) (person.Person, error) {
	if m.err != nil {
		return person.Person{}, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return person.Person{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockPersonRepo) List(context.Context) ([]person.Person, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listed, nil
}

func (m *mockPersonRepo) Create(context.Context, string, string, *uuid.UUID) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	return uuid.New(), nil
}

func (m *mockPersonRepo) SaveAssessment(_ context.Context, id uuid.UUID, code string, scores riasec.ScoreVector) error {
	if m.err != nil {
		return m.err
	}
	if m.byID != nil {
		if _, ok := m.byID[id]; !ok {
			return repository.ErrNotFound
		}
	}
	m.savedAssessmentCode = code
	m.savedScores = scores
	return nil
}

func (m *mockPersonRepo) SaveKarma(_ context.Context, id uuid.UUID, k person.KarmaData) error {
	if m.err != nil {
		return m.err
	}
	if m.byID != nil {
		if _, ok := m.byID[id]; !ok {
			return repository.ErrNotFound
		}
	}
	m.savedKarma = &k
	return nil
}

func (m *mockPersonRepo) SaveClimate(_ context.Context, id uuid.UUID, c person.ClimateData) error {
	if m.err != nil {
		return m.err
	}
	if m.byID != nil {
		if _, ok := m.byID[id]; !ok {
			return repository.ErrNotFound
		}
	}
	m.savedClimate = &c
	return nil
}

type mockOrgRepo struct {
	root *org.Node
	err  error
}

func (m *mockOrgRepo) GetTree(context.Context) (*org.Node, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.root, nil
}

type mockJobBankRepo struct {
	db  jobs.Database
	err error
}

func (m *mockJobBankRepo) Load(context.Context) (jobs.Database, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.db, nil
}

func (m *mockJobBankRepo) Upsert(context.Context, string, int, jobs.Suggestion) error {
	return m.err
}

type mockCache struct {
	entries         map[string][]byte
	deletedKeys     []string
	deletedPatterns []string
	setCalls        int
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	m.setCalls++
	return nil
}

func (m *mockCache) Delete(_ context.Context, keys ...string) error {
	m.deletedKeys = append(m.deletedKeys, keys...)
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	return nil
}
