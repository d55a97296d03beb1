package database

import (
	"context"
	"errors"
	"time"

	"emojifeed/internal/core/apperr"
	"emojifeed/internal/core/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db, now: time.Now}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, authorID, content string) (*post.Post, error) {
	p := &post.Post{
		ID:        uuid.Must(uuid.NewV4()),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: repo.now().UTC(),
	}
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, apperr.Upstream("post store", err)
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	pid, err := uuid.FromString(id)
	if err != nil {
		return nil, apperr.NotFound("post", id)
	}

	var p post.Post
	if err := repo.db.WithContext(ctx).Where("id = ?", pid).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post", id)
		}
		return nil, apperr.Upstream("post store", err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) ListAll(ctx context.Context, limit int) ([]*post.Post, error) {
	return repo.list(repo.db.WithContext(ctx), limit)
}

func (repo *PostRepositoryDatabase) ListByAuthor(ctx context.Context, authorID string, limit int) ([]*post.Post, error) {
	return repo.list(repo.db.WithContext(ctx).Where("author_id = ?", authorID), limit)
}

// list orders newest first; id breaks ties so pages are deterministic.
func (repo *PostRepositoryDatabase) list(q *gorm.DB, limit int) ([]*post.Post, error) {
	posts := make([]*post.Post, 0)
	if err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, apperr.Upstream("post store", err)
	}
	return posts, nil
}
