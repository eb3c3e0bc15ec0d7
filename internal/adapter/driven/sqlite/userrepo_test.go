package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

func TestUserRepo_AddAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, model.Credential{Username: "bob", Password: "bobpw"}))
	require.NoError(t, repo.Add(ctx, model.Credential{Username: "alice", Password: "alicepw"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.NotZero(t, users[0].ID)
	assert.False(t, users[0].CreatedAt.IsZero())
}

func TestUserRepo_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepo_Add_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, model.Credential{Username: "alice", Password: "a"}))

	err := repo.Add(ctx, model.Credential{Username: "alice", Password: "b"})
	assert.ErrorIs(t, err, driven.ErrUserAlreadyExists)
}

func TestUserRepo_Remove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, model.Credential{Username: "alice", Password: "a"}))
	require.NoError(t, repo.Remove(ctx, "alice"))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepo_Remove_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	err := repo.Remove(context.Background(), "ghost")
	assert.ErrorIs(t, err, driven.ErrUserNotFound)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	// setupTestDB already migrated once; a second run must be a no-op.
	require.NoError(t, RunMigrations(db.Writer))
}

func TestParseTime(t *testing.T) {
	for _, s := range []string{
		"2026-01-15 10:00:00",
		"2026-01-15T10:00:00Z",
		"2026-01-15T10:00:00+02:00",
	} {
		got, err := parseTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2026, got.Year())
	}

	_, err := parseTime("yesterday")
	assert.Error(t, err)
}
