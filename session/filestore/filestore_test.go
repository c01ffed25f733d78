package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/chrom13/schoolmanager-web/internal/errors"
	"github.com/chrom13/schoolmanager-web/session"
	"github.com/chrom13/schoolmanager-web/session/filestore"
	"github.com/chrom13/schoolmanager-web/users"
)

func TestRepo_RoundTrip(t *testing.T) {
	repo, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	_, found, err := repo.Load()
	require.NoError(t, err)
	require.False(t, found)

	state := session.PersistedState{
		Token:           "tok123",
		User:            &users.User{ID: 1, Email: "a@b.com", Role: users.RoleDirector},
		IsAuthenticated: true,
	}
	require.NoError(t, repo.Save(state))

	loaded, found, err := repo.Load()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, state.Token, loaded.Token)
	require.Equal(t, state.User.Email, loaded.User.Email)
	require.True(t, loaded.IsAuthenticated)

	require.NoError(t, repo.Clear())
	_, found, err = repo.Load()
	require.NoError(t, err)
	require.False(t, found)

	// Clearing an already-missing record stays quiet.
	require.NoError(t, repo.Clear())
}

func TestRepo_CorruptFileReportsError(t *testing.T) {
	dir := t.TempDir()
	repo, err := filestore.New(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, session.Namespace+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err = repo.Load()
	require.Error(t, err, "garbage on disk must surface as an error, not a crash")
	require.True(t, errs.Is(err, errs.ErrSessionCorrupt))
}
