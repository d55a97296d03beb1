package ratelimit

import (
	"context"
	"time"

	"emojifeed/internal/core/ratelimit"
)

// Store is the external counter store. TryAcquire must trim, count and
// record in a single atomic step.
type Store interface {
	TryAcquire(ctx context.Context, key string, limit int, window time.Duration) (ratelimit.Decision, error)
}

// Limiter answers allow/deny for one write attempt by an author.
type Limiter interface {
	TryAcquire(ctx context.Context, authorID string) (ratelimit.Decision, error)
}
