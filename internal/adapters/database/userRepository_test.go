package database

import (
	"context"
	"testing"
	"time"

	"emojifeed/internal/core/apperr"
	"emojifeed/internal/core/user"
	userapp "emojifeed/internal/core/user/service"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepositoryDatabase(db)
	u := seedUser(t, db, "alice")

	found, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, u.ProfileImageURL, found.ProfileImageURL)

	_, err = repo.FindByUsername(context.Background(), "bob")
	requireCode(t, err, apperr.CodeNotFound)
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")

	_, err := NewUserRepositoryDatabase(db).Create(context.Background(), &user.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "alice",
		Password: "hash",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

// staleLookup answers every lookup as if the handle were still free, which is
// what the slower of two concurrent registrations observes.
type staleLookup struct{ *UserRepositoryDatabase }

func (staleLookup) FindByUsername(_ context.Context, username string) (*user.User, error) {
	return nil, apperr.NotFound("user", username)
}

func TestUserRepository_RegistrationLosingUniqueIndexIsTaken(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "carol")
	svc := userapp.NewUserService(staleLookup{NewUserRepositoryDatabase(db)}, []byte("k"), nil)

	_, err := svc.RegisterUser(context.Background(), "carol", "", "password1")
	assert.ErrorIs(t, err, userapp.ErrUsernameTaken)
	assert.False(t, apperr.Is(err, apperr.CodeUpstream))
}

func TestIdentityResolver_ResolveBatchIsPartial(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	missing := uuid.Must(uuid.NewV4()).String()

	resolver := NewIdentityResolverDatabase(db, time.Second)
	got, err := resolver.ResolveBatch(context.Background(), []string{alice.ID.String(), bob.ID.String(), missing})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[alice.ID.String()].Username)
	assert.Equal(t, alice.ProfileImageURL, got[alice.ID.String()].ProfileImageURL)
	assert.Equal(t, "bob", got[bob.ID.String()].Username)
	_, ok := got[missing]
	assert.False(t, ok)
}

func TestIdentityResolver_EmptyBatch(t *testing.T) {
	got, err := NewIdentityResolverDatabase(newTestDB(t), 0).ResolveBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIdentityResolver_CancelledContextIsUpstream(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIdentityResolverDatabase(db, time.Second).ResolveBatch(ctx, []string{"x"})
	requireCode(t, err, apperr.CodeUpstream)
}
