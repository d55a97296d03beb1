package postapp

import (
	"context"
	"strings"

	"emojifeed/internal/core/apperr"
	postEntity "emojifeed/internal/core/post"
	metricsPort "emojifeed/internal/ports/metrics"
	postPort "emojifeed/internal/ports/post"
	ratelimitPort "emojifeed/internal/ports/ratelimit"

	"go.uber.org/zap"
)

// PostService admits new posts: authentication, content validation, rate
// limiting, then persistence. Any gate that rejects leaves no state behind
// except that a consumed rate-limit slot is not returned when persistence
// fails.
type PostService struct {
	PostRepository postPort.PostRepository
	Limiter        ratelimitPort.Limiter
	Policy         postEntity.ContentPolicy
	Metrics        metricsPort.Recorder
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	limiter ratelimitPort.Limiter,
	policy postEntity.ContentPolicy,
	metrics metricsPort.Recorder,
	logger *zap.Logger,
) *PostService {
	if metrics == nil {
		metrics = metricsPort.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		PostRepository: postRepo,
		Limiter:        limiter,
		Policy:         policy,
		Metrics:        metrics,
		Logger:         logger,
	}
}

// CreatePost stores a new post for authorID.
func (s *PostService) CreatePost(ctx context.Context, authorID, content string) (*postPort.PostDTO, error) {
	if strings.TrimSpace(authorID) == "" {
		s.Metrics.WriteRejected(string(apperr.CodeUnauthenticated))
		return nil, apperr.Unauthenticated("authentication required")
	}

	if err := s.Policy.Validate(content); err != nil {
		s.Metrics.WriteRejected(string(apperr.CodeValidation))
		s.Logger.Debug("Post rejected by content policy", zap.String("authorID", authorID), zap.Error(err))
		return nil, err
	}

	decision, err := s.Limiter.TryAcquire(ctx, authorID)
	if err != nil {
		s.Metrics.WriteRejected(string(apperr.CodeOf(err)))
		return nil, err
	}
	if !decision.Allowed {
		s.Metrics.WriteRejected(string(apperr.CodeThrottled))
		return nil, apperr.Throttled(decision.RetryAfter)
	}

	created, err := s.PostRepository.Create(ctx, authorID, content)
	if err != nil {
		s.Logger.Error("❌ Failed to create post", zap.String("authorID", authorID), zap.Error(err))
		if apperr.CodeOf(err) == "" {
			err = apperr.Upstream("post store", err)
		}
		return nil, err
	}

	s.Metrics.PostCreated()
	s.Logger.Info("✅ Created post", zap.String("postID", created.ID.String()), zap.String("authorID", authorID))
	return postPort.ToPostDTO(created), nil
}
