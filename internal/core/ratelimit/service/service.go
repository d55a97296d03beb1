package ratelimitapp

import (
	"context"

	"emojifeed/internal/core/apperr"
	"emojifeed/internal/core/ratelimit"
	ratelimitPort "emojifeed/internal/ports/ratelimit"

	"go.uber.org/zap"
)

// DefaultKeyPrefix namespaces post-write counters in the store.
const DefaultKeyPrefix = "ratelimit:post:"

// LimiterService applies a Policy per author id on top of a Store.
type LimiterService struct {
	Store     ratelimitPort.Store
	Policy    ratelimit.Policy
	KeyPrefix string
	Logger    *zap.Logger
}

func NewLimiterService(store ratelimitPort.Store, policy ratelimit.Policy, logger *zap.Logger) *LimiterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LimiterService{
		Store:     store,
		Policy:    policy,
		KeyPrefix: DefaultKeyPrefix,
		Logger:    logger,
	}
}

// TryAcquire counts one attempt for authorID if the window has room.
// Store failures are returned as UPSTREAM_FAILURE and never admit.
func (s *LimiterService) TryAcquire(ctx context.Context, authorID string) (ratelimit.Decision, error) {
	key := s.KeyPrefix + authorID

	d, err := s.Store.TryAcquire(ctx, key, s.Policy.MaxRequests, s.Policy.Window)
	if err != nil {
		s.Logger.Error("❌ Rate limit store failed", zap.String("authorID", authorID), zap.Error(err))
		return ratelimit.Decision{}, apperr.Upstream("rate limit store", err)
	}

	if !d.Allowed {
		s.Logger.Info("⛔ Write throttled",
			zap.String("authorID", authorID),
			zap.Duration("retryAfter", d.RetryAfter),
		)
	}
	return d, nil
}
