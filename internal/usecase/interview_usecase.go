package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/infrastructure/interview"
	"talent-pulse/internal/repository"
	"talent-pulse/internal/ws"

	"github.com/google/uuid"
)

type InterviewResult struct {
	PersonID uuid.UUID
	Karma    person.KarmaData
	// Degraded is true when the analysis service was unavailable and
	// the stored karma is the fallback placeholder.
	Degraded bool
}

type InterviewUsecase interface {
	SubmitTranscript(ctx context.Context, personID uuid.UUID, transcript string) (InterviewResult, error)
}

type Interview struct {
	people   repository.PersonRepository
	analyzer interview.Client
	cache    AnalyticsCache
	logger   *log.Logger
}

func NewInterviewUsecase(people repository.PersonRepository, analyzer interview.Client, cache AnalyticsCache, logger *log.Logger) *Interview {
	if logger == nil {
		logger = log.Default()
	}
	return &Interview{people: people, analyzer: analyzer, cache: cache, logger: logger}
}

// SubmitTranscript runs the transcript through the analysis service and
// stores the result. An unreachable service never fails the intake; the
// fallback karma is stored instead.
func (u *Interview) SubmitTranscript(ctx context.Context, personID uuid.UUID, transcript string) (InterviewResult, error) {
	if personID == uuid.Nil || strings.TrimSpace(transcript) == "" {
		return InterviewResult{}, ErrInvalidInput
	}

	karma := interview.Fallback()
	degraded := true
	if u.analyzer != nil {
		analyzed, err := u.analyzer.AnalyzeTranscript(ctx, transcript)
		if err != nil {
			u.logger.Printf("interview analysis unavailable | person=%s error=%v", personID, err)
		} else {
			karma = analyzed
			degraded = false
		}
	}

	if err := u.people.SaveKarma(ctx, personID, karma); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return InterviewResult{}, ErrPersonNotFound
		}
		return InterviewResult{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, analyticsKeyPattern); err != nil {
			u.logger.Printf("cache invalidation failed | pattern=%s error=%v", analyticsKeyPattern, err)
		}
		if err := u.cache.Delete(ctx, reportCacheKey(personID.String())); err != nil {
			u.logger.Printf("cache invalidation failed | key=%s error=%v", reportCacheKey(personID.String()), err)
		}
	}
	ws.NotifyAnalyticsRefreshed()

	return InterviewResult{PersonID: personID, Karma: karma, Degraded: degraded}, nil
}
