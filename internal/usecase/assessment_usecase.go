package usecase

import (
	"context"
	"errors"
	"log"

	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"
	"talent-pulse/internal/repository"
	"talent-pulse/internal/ws"

	"github.com/google/uuid"
)

type AssessmentResult struct {
	PersonID    uuid.UUID
	ProfileCode string
	Scores      riasec.ScoreVector
	Ranking     []riasec.Dimension
}

type AssessmentUsecase interface {
	Bank() riasec.Bank
	Submit(ctx context.Context, personID uuid.UUID, selectedItemIDs []string) (AssessmentResult, error)
	SubmitClimate(ctx context.Context, personID uuid.UUID, sectionAverages map[string]float64) error
}

type Assessment struct {
	people repository.PersonRepository
	cache  AnalyticsCache
	bank   riasec.Bank
	logger *log.Logger

	notify func(personID, profileCode string)
}

func NewAssessmentUsecase(people repository.PersonRepository, cache AnalyticsCache, logger *log.Logger) *Assessment {
	if logger == nil {
		logger = log.Default()
	}
	return &Assessment{
		people: people,
		cache:  cache,
		bank:   riasec.DefaultBank(),
		logger: logger,
		notify: ws.NotifyAssessmentScored,
	}
}

func (u *Assessment) Bank() riasec.Bank {
	return u.bank
}

// Submit scores the selected item ids, persists the snapshot and fans
// the result out to dashboard subscribers.
func (u *Assessment) Submit(ctx context.Context, personID uuid.UUID, selectedItemIDs []string) (AssessmentResult, error) {
	if personID == uuid.Nil {
		return AssessmentResult{}, ErrInvalidInput
	}

	scores := riasec.Score(u.bank, selectedItemIDs)
	code := riasec.DeriveProfileCode(scores)

	if err := u.people.SaveAssessment(ctx, personID, code, scores); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AssessmentResult{}, ErrPersonNotFound
		}
		return AssessmentResult{}, ErrInternal
	}

	u.invalidateDerived(ctx, personID)
	u.notify(personID.String(), code)

	return AssessmentResult{
		PersonID:    personID,
		ProfileCode: code,
		Scores:      scores,
		Ranking:     riasec.Rank(scores),
	}, nil
}

// SubmitClimate stores a climate survey response. The overall average
// is derived from the section averages.
func (u *Assessment) SubmitClimate(ctx context.Context, personID uuid.UUID, sectionAverages map[string]float64) error {
	if personID == uuid.Nil || len(sectionAverages) == 0 {
		return ErrInvalidInput
	}
	for _, avg := range sectionAverages {
		if avg < 1 || avg > 5 {
			return ErrInvalidInput
		}
	}

	var sum float64
	for _, avg := range sectionAverages {
		sum += avg
	}

	data := person.ClimateData{
		SectionAverages: sectionAverages,
		OverallAverage:  sum / float64(len(sectionAverages)),
	}

	if err := u.people.SaveClimate(ctx, personID, data); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return ErrInternal
	}

	u.invalidateDerived(ctx, personID)
	return nil
}

// invalidateDerived drops cached analytics and the person's report.
// Cache errors only get logged; the write already succeeded.
func (u *Assessment) invalidateDerived(ctx context.Context, personID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, analyticsKeyPattern); err != nil {
		u.logger.Printf("cache invalidation failed | pattern=%s error=%v", analyticsKeyPattern, err)
	}
	if err := u.cache.Delete(ctx, reportCacheKey(personID.String())); err != nil {
		u.logger.Printf("cache invalidation failed | key=%s error=%v", reportCacheKey(personID.String()), err)
	}
	ws.NotifyAnalyticsRefreshed()
}
