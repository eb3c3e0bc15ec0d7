package sqlite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

func TestCredentialRepo_Lookup(t *testing.T) {
	path := seedFileDB(t,
		model.Credential{Username: "alice", Password: "alicepw"},
		model.Credential{Username: "bob", Password: "bobpw"},
		model.Credential{Username: "", Password: ""},
	)
	repo := NewCredentialRepo(path)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"exact match", "alice", "alicepw", true},
		{"second user", "bob", "bobpw", true},
		{"wrong password", "alice", "wrong", false},
		{"swapped passwords", "alice", "bobpw", false},
		{"swapped passwords reverse", "bob", "alicepw", false},
		{"unknown user", "carol", "anything", false},
		{"case sensitive username", "Alice", "alicepw", false},
		{"no trimming", "alice ", "alicepw", false},
		{"empty pair stored", "", "", true},
		{"sql meta characters", "alice' OR '1'='1", "x' OR '1'='1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Lookup(ctx, tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentialRepo_LookupIsIdempotent(t *testing.T) {
	path := seedFileDB(t, model.Credential{Username: "alice", Password: "secret1"})
	repo := NewCredentialRepo(path)
	ctx := context.Background()

	for range 3 {
		found, err := repo.Lookup(ctx, "alice", "secret1")
		require.NoError(t, err)
		assert.True(t, found)
	}
}

func TestCredentialRepo_SeesWritesBetweenLookups(t *testing.T) {
	path := seedFileDB(t)
	repo := NewCredentialRepo(path)
	ctx := context.Background()

	found, err := repo.Lookup(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.False(t, found)

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewUserRepo(db).Add(ctx, model.Credential{Username: "alice", Password: "secret1"}))
	require.NoError(t, db.Close())

	found, err = repo.Lookup(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCredentialRepo_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")
	repo := NewCredentialRepo(path)

	found, err := repo.Lookup(context.Background(), "alice", "secret1")

	assert.False(t, found)
	require.ErrorIs(t, err, driven.ErrStoreUnavailable)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "lookup must not create the database file")
}

func TestCredentialRepo_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("not a sqlite database "), 200), 0o600))
	repo := NewCredentialRepo(path)

	found, err := repo.Lookup(context.Background(), "alice", "secret1")

	assert.False(t, found)
	assert.ErrorIs(t, err, driven.ErrStoreUnavailable)
}

func TestCredentialRepo_MissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	db, err := NewDB(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo := NewCredentialRepo(path)
	found, err := repo.Lookup(context.Background(), "alice", "secret1")

	assert.False(t, found)
	assert.ErrorIs(t, err, driven.ErrStoreUnavailable)
}

func TestCredentialRepo_CanceledContext(t *testing.T) {
	path := seedFileDB(t, model.Credential{Username: "alice", Password: "secret1"})
	repo := NewCredentialRepo(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	found, err := repo.Lookup(ctx, "alice", "secret1")

	assert.False(t, found)
	assert.ErrorIs(t, err, driven.ErrStoreUnavailable)
}

func TestCredentialRepo_ConcurrentLookups(t *testing.T) {
	path := seedFileDB(t, model.Credential{Username: "alice", Password: "secret1"})
	repo := NewCredentialRepo(path)

	const goroutines = 16
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			pw := "secret1"
			if i%2 == 1 {
				pw = "wrong"
			}
			found, err := repo.Lookup(context.Background(), "alice", pw)
			assert.NoError(t, err)
			assert.Equal(t, i%2 == 0, found)
		}()
	}
	wg.Wait()
}
