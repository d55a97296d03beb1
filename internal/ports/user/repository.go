package user

import (
	"context"

	"emojifeed/internal/core/user"
)

// UserRepository stores and loads registered users.
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// IdentityResolver looks up public identities for a batch of author ids.
// Ids without a record are absent from the result; that is not an error.
type IdentityResolver interface {
	ResolveBatch(ctx context.Context, ids []string) (map[string]user.Identity, error)
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type IdentityDTO struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func ToIdentityDTO(i user.Identity) *IdentityDTO {
	return &IdentityDTO{
		ID:              i.ID,
		Username:        i.Username,
		ProfileImageURL: i.ProfileImageURL,
	}
}
