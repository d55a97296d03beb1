package feedapp

import (
	"context"
	"errors"

	"emojifeed/internal/core/apperr"
	"emojifeed/internal/core/post"
	metricsPort "emojifeed/internal/ports/metrics"
	postPort "emojifeed/internal/ports/post"
	userPort "emojifeed/internal/ports/user"

	"go.uber.org/zap"
)

// DefaultLimit is the page size and the largest page a feed may return.
const DefaultLimit = 100

const (
	kindAll    = "all"
	kindAuthor = "author"
	kindPost   = "post"
)

// FeedService composes posts with their authors' identities.
type FeedService struct {
	PostRepository   postPort.PostRepository
	IdentityResolver userPort.IdentityResolver
	Limit            int
	Metrics          metricsPort.Recorder
	Logger           *zap.Logger
}

func NewFeedService(
	postRepo postPort.PostRepository,
	resolver userPort.IdentityResolver,
	limit int,
	metrics metricsPort.Recorder,
	logger *zap.Logger,
) *FeedService {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	if metrics == nil {
		metrics = metricsPort.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedService{
		PostRepository:   postRepo,
		IdentityResolver: resolver,
		Limit:            limit,
		Metrics:          metrics,
		Logger:           logger,
	}
}

// GetFeed returns the newest posts across all authors.
func (s *FeedService) GetFeed(ctx context.Context) ([]*postPort.FeedEntryDTO, error) {
	posts, err := s.PostRepository.ListAll(ctx, s.Limit)
	if err != nil {
		return nil, s.fail(kindAll, err)
	}
	entries, err := s.compose(ctx, posts)
	if err != nil {
		return nil, s.fail(kindAll, err)
	}
	s.Metrics.FeedServed(kindAll)
	return entries, nil
}

// GetFeedByAuthor returns the newest posts of one author.
func (s *FeedService) GetFeedByAuthor(ctx context.Context, authorID string) ([]*postPort.FeedEntryDTO, error) {
	posts, err := s.PostRepository.ListByAuthor(ctx, authorID, s.Limit)
	if err != nil {
		return nil, s.fail(kindAuthor, err)
	}
	entries, err := s.compose(ctx, posts)
	if err != nil {
		return nil, s.fail(kindAuthor, err)
	}
	s.Metrics.FeedServed(kindAuthor)
	return entries, nil
}

// GetPostByID returns a single post with its author.
func (s *FeedService) GetPostByID(ctx context.Context, id string) (*postPort.FeedEntryDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(kindPost, err)
	}
	entries, err := s.compose(ctx, []*post.Post{p})
	if err != nil {
		return nil, s.fail(kindPost, err)
	}
	s.Metrics.FeedServed(kindPost)
	return entries[0], nil
}

// compose resolves every distinct author in one call and pairs each post
// with its author, keeping the repository order. A post whose author is
// missing or unnamed fails the whole page.
func (s *FeedService) compose(ctx context.Context, posts []*post.Post) ([]*postPort.FeedEntryDTO, error) {
	entries := make([]*postPort.FeedEntryDTO, 0, len(posts))
	if len(posts) == 0 {
		return entries, nil
	}

	seen := make(map[string]struct{}, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; ok {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		ids = append(ids, p.AuthorID)
	}

	authors, err := s.IdentityResolver.ResolveBatch(ctx, ids)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperr.Upstream("identity provider", err)
	}

	for _, p := range posts {
		author, ok := authors[p.AuthorID]
		if !ok || author.Username == "" {
			s.Logger.Error("❌ Author not resolved for post",
				zap.String("postID", p.ID.String()),
				zap.String("authorID", p.AuthorID),
				zap.Bool("found", ok),
			)
			return nil, apperr.AuthorNotResolved(p.AuthorID)
		}
		entries = append(entries, &postPort.FeedEntryDTO{
			Post:   postPort.ToPostDTO(p),
			Author: userPort.ToIdentityDTO(author),
		})
	}
	return entries, nil
}

func (s *FeedService) fail(kind string, err error) error {
	code := apperr.CodeOf(err)
	if code == "" {
		code = apperr.CodeUpstream
		err = apperr.Upstream("post store", err)
	}
	s.Metrics.FeedFailed(kind, string(code))
	return err
}
