package post

import (
	"context"
	"time"

	"emojifeed/internal/core/post"
	userPort "emojifeed/internal/ports/user"
)

// PostRepository is the post store. List calls return posts newest first,
// ties broken by id descending, capped at limit.
type PostRepository interface {
	Create(ctx context.Context, authorID, content string) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	ListAll(ctx context.Context, limit int) ([]*post.Post, error)
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]*post.Post, error)
}

type PostDTO struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedEntryDTO is a post paired with its resolved author.
type FeedEntryDTO struct {
	Post   *PostDTO              `json:"post"`
	Author *userPort.IdentityDTO `json:"author"`
}

func ToPostDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		ID:        p.ID.String(),
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}
