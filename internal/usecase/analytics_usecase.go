package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-pulse/internal/domain/climate"
	"talent-pulse/internal/domain/compat"
	"talent-pulse/internal/domain/culture"
	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/repository"
)

const analyticsCacheTTL = 5 * time.Minute

type AnalyticsUsecase interface {
	Culture(ctx context.Context, declaredValues []string) (culture.Analysis, error)
	ClimateGlobal(ctx context.Context) (*climate.Analytics, error)
	ClimateByUnit(ctx context.Context) ([]climate.UnitStat, error)
	Leadership(ctx context.Context) (compat.LeadershipAnalytics, error)
}

type Analytics struct {
	people repository.PersonRepository
	orgs   repository.OrgRepository
	cache  AnalyticsCache
	logger *log.Logger
}

func NewAnalyticsUsecase(people repository.PersonRepository, orgs repository.OrgRepository, cache AnalyticsCache, logger *log.Logger) *Analytics {
	if logger == nil {
		logger = log.Default()
	}
	return &Analytics{people: people, orgs: orgs, cache: cache, logger: logger}
}

func (u *Analytics) Culture(ctx context.Context, declaredValues []string) (culture.Analysis, error) {
	key := cultureCacheKey(declaredValues)

	var cached culture.Analysis
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	root, people, err := u.loadOrgAndPeople(ctx)
	if err != nil {
		return culture.Analysis{}, err
	}

	out := culture.Analyze(root, people, declaredValues)
	u.cacheSet(ctx, key, out)
	return out, nil
}

func (u *Analytics) ClimateGlobal(ctx context.Context) (*climate.Analytics, error) {
	var cached *climate.Analytics
	if u.cacheGet(ctx, climateGlobalCacheKey, &cached) {
		return cached, nil
	}

	people, err := u.people.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := climate.AnalyzeGlobal(people)
	u.cacheSet(ctx, climateGlobalCacheKey, out)
	return out, nil
}

func (u *Analytics) ClimateByUnit(ctx context.Context) ([]climate.UnitStat, error) {
	var cached []climate.UnitStat
	if u.cacheGet(ctx, climateUnitsCacheKey, &cached) {
		return cached, nil
	}

	root, people, err := u.loadOrgAndPeople(ctx)
	if err != nil {
		return nil, err
	}

	out := climate.AnalyzeByUnit(root, people)
	u.cacheSet(ctx, climateUnitsCacheKey, out)
	return out, nil
}

func (u *Analytics) Leadership(ctx context.Context) (compat.LeadershipAnalytics, error) {
	var cached compat.LeadershipAnalytics
	if u.cacheGet(ctx, leadershipCacheKey, &cached) {
		return cached, nil
	}

	root, people, err := u.loadOrgAndPeople(ctx)
	if err != nil {
		return compat.LeadershipAnalytics{}, err
	}

	out := compat.AnalyzeLeadership(root, people)
	u.cacheSet(ctx, leadershipCacheKey, out)
	return out, nil
}

func (u *Analytics) loadOrgAndPeople(ctx context.Context) (*org.Node, []person.Person, error) {
	root, err := u.orgs.GetTree(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrOrgNotFound
		}
		return nil, nil, ErrInternal
	}

	people, err := u.people.List(ctx)
	if err != nil {
		return nil, nil, ErrInternal
	}
	return root, people, nil
}

func (u *Analytics) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		return false
	}
	return hit
}

func (u *Analytics) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, analyticsCacheTTL); err != nil {
		u.logger.Printf("analytics cache write failed | key=%s error=%v", key, err)
	}
}
