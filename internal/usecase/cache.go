package usecase

import (
	"context"
	"time"
)

// AnalyticsCache is the caching port used by the read-heavy usecases.
// Implementations degrade to misses when the backing store is down.
type AnalyticsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
