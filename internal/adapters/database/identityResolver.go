package database

import (
	"context"
	"time"

	"emojifeed/internal/core/apperr"
	"emojifeed/internal/core/user"

	"gorm.io/gorm"
)

// IdentityResolverDatabase serves public identities from the users table
// with a single IN query per batch.
type IdentityResolverDatabase struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewIdentityResolverDatabase bounds each lookup by timeout; zero means no
// extra bound beyond the caller's context.
func NewIdentityResolverDatabase(db *gorm.DB, timeout time.Duration) *IdentityResolverDatabase {
	return &IdentityResolverDatabase{db: db, timeout: timeout}
}

func (r *IdentityResolverDatabase) ResolveBatch(ctx context.Context, ids []string) (map[string]user.Identity, error) {
	out := make(map[string]user.Identity, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var users []*user.User
	if err := r.db.WithContext(ctx).
		Select("id", "username", "profile_image_url").
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, apperr.Upstream("identity provider", err)
	}

	for _, u := range users {
		out[u.ID.String()] = u.Identity()
	}
	return out, nil
}
