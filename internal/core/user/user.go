package user

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
)

// ErrUsernameTaken is returned when a handle is already registered.
var ErrUsernameTaken = errors.New("username already taken")

type User struct {
	ID              uuid.UUID `gorm:"primary_key;type:char(36)"`
	Username        string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ProfileImageURL string    `gorm:"type:varchar(512)"`
	Password        string    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// Identity is the public profile of an author. Username is empty when the
// directory has no handle for the subject.
type Identity struct {
	ID              string
	Username        string
	ProfileImageURL string
}

func (u *User) Identity() Identity {
	return Identity{
		ID:              u.ID.String(),
		Username:        u.Username,
		ProfileImageURL: u.ProfileImageURL,
	}
}
