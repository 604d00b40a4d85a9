package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-pulse/internal/domain/report"
	"talent-pulse/internal/domain/riasec"
	"talent-pulse/internal/repository"

	"github.com/google/uuid"
)

var ErrNoAssessment = errors.New("person has no assessment")

const reportCacheTTL = 10 * time.Minute

type PersonReport struct {
	PersonID    uuid.UUID        `json:"person_id"`
	FullName    string           `json:"full_name"`
	JobTitle    string           `json:"job_title,omitempty"`
	ProfileCode string           `json:"profile_code"`
	Scores      map[string]int   `json:"scores"`
	Sections    []report.Section `json:"sections"`
}

type ReportUsecase interface {
	BuildReport(ctx context.Context, personID uuid.UUID) (PersonReport, error)
}

type Report struct {
	people   repository.PersonRepository
	jobBank  repository.JobBankRepository
	cache    AnalyticsCache
	composer *report.Composer
	logger   *log.Logger
}

func NewReportUsecase(people repository.PersonRepository, jobBank repository.JobBankRepository, cache AnalyticsCache, logger *log.Logger) *Report {
	if logger == nil {
		logger = log.Default()
	}
	return &Report{
		people:   people,
		jobBank:  jobBank,
		cache:    cache,
		composer: report.NewComposer(),
		logger:   logger,
	}
}

func (u *Report) BuildReport(ctx context.Context, personID uuid.UUID) (PersonReport, error) {
	if personID == uuid.Nil {
		return PersonReport{}, ErrInvalidInput
	}

	key := reportCacheKey(personID.String())
	if u.cache != nil {
		var cached PersonReport
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	p, err := u.people.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return PersonReport{}, ErrPersonNotFound
		}
		return PersonReport{}, ErrInternal
	}
	if !p.HasProfile() || len(p.Scores) == 0 {
		return PersonReport{}, ErrNoAssessment
	}

	db, err := u.jobBank.Load(ctx)
	if err != nil {
		return PersonReport{}, ErrInternal
	}

	sections := u.composer.Compose(p.Scores, db, &p)

	out := PersonReport{
		PersonID:    personID,
		FullName:    p.FullName,
		JobTitle:    p.JobTitle,
		ProfileCode: p.ProfileCode,
		Scores:      scoresByLetter(p.Scores),
		Sections:    sections,
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, reportCacheTTL); err != nil {
			u.logger.Printf("report cache write failed | key=%s error=%v", key, err)
		}
	}
	return out, nil
}

func scoresByLetter(v riasec.ScoreVector) map[string]int {
	out := make(map[string]int, len(riasec.CanonicalOrder))
	for _, d := range riasec.CanonicalOrder {
		out[string(d)] = v[d]
	}
	return out
}
