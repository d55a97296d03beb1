package post

import (
	"time"

	"github.com/gofrs/uuid"
)

// Post is a single feed item. All fields are fixed at creation.
type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	AuthorID  string    `gorm:"type:varchar(64);not null;index:idx_posts_author_created,priority:1"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_posts_author_created,priority:2;index"`
}
