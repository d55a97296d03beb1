package database

import (
	"emojifeed/internal/core/post"
	"emojifeed/internal/core/user"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables the adapters use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&post.Post{},
	)
}
