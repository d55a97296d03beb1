package database

import (
	"context"
	"testing"
	"time"

	"emojifeed/internal/core/apperr"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func TestPostRepository_CreateThenFind(t *testing.T) {
	repo := NewPostRepositoryDatabase(newTestDB(t))
	repo.now = func() time.Time { return start }
	ctx := context.Background()

	created, err := repo.Create(ctx, "author-1", "😀🔥")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.CreatedAt.Equal(start))

	found, err := repo.FindByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "author-1", found.AuthorID)
	assert.Equal(t, "😀🔥", found.Content)
	assert.True(t, found.CreatedAt.Equal(start))
}

func TestPostRepository_FindByID_NotFound(t *testing.T) {
	repo := NewPostRepositoryDatabase(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.Must(uuid.NewV4()).String())
	requireCode(t, err, apperr.CodeNotFound)

	_, err = repo.FindByID(ctx, "not-a-uuid")
	requireCode(t, err, apperr.CodeNotFound)
}

func TestPostRepository_ListAll_NewestFirstAndCapped(t *testing.T) {
	repo := NewPostRepositoryDatabase(newTestDB(t))
	repo.now = steppingClock(start, time.Second)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, "a", "😀")
		require.NoError(t, err)
	}

	posts, err := repo.ListAll(ctx, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.True(t, posts[0].CreatedAt.Equal(start.Add(4*time.Second)))
	for i := 1; i < len(posts); i++ {
		assert.True(t, posts[i-1].CreatedAt.After(posts[i].CreatedAt))
	}
}

func TestPostRepository_ListAll_TiesBrokenByID(t *testing.T) {
	repo := NewPostRepositoryDatabase(newTestDB(t))
	repo.now = func() time.Time { return start }
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := repo.Create(ctx, "a", "😀")
		require.NoError(t, err)
	}

	first, err := repo.ListAll(ctx, 10)
	require.NoError(t, err)
	second, err := repo.ListAll(ctx, 10)
	require.NoError(t, err)

	require.Len(t, first, 4)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		if i > 0 {
			assert.Greater(t, first[i-1].ID.String(), first[i].ID.String())
		}
	}
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	repo := NewPostRepositoryDatabase(newTestDB(t))
	repo.now = steppingClock(start, time.Second)
	ctx := context.Background()

	for _, author := range []string{"a", "b", "a", "c", "a"} {
		_, err := repo.Create(ctx, author, "😀")
		require.NoError(t, err)
	}

	posts, err := repo.ListByAuthor(ctx, "a", 100)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i, p := range posts {
		assert.Equal(t, "a", p.AuthorID)
		if i > 0 {
			assert.True(t, posts[i-1].CreatedAt.After(p.CreatedAt))
		}
	}

	none, err := repo.ListByAuthor(ctx, "nobody", 100)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPostRepository_ClosedDatabaseIsUpstream(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.ListAll(context.Background(), 10)
	requireCode(t, err, apperr.CodeUpstream)

	_, err = repo.Create(context.Background(), "a", "😀")
	requireCode(t, err, apperr.CodeUpstream)
}
