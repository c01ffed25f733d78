package sqlitestore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrom13/schoolmanager-web/session"
	"github.com/chrom13/schoolmanager-web/session/sqlitestore"
	"github.com/chrom13/schoolmanager-web/users"
)

func TestRepo_RoundTrip(t *testing.T) {
	repo, err := sqlitestore.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	_, found, err := repo.Load()
	require.NoError(t, err)
	require.False(t, found)

	state := session.PersistedState{
		Token:           "tok123",
		User:            &users.User{ID: 1, Email: "a@b.com", Role: users.RoleAdmin},
		IsAuthenticated: true,
	}
	require.NoError(t, repo.Save(state))

	loaded, found, err := repo.Load()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "tok123", loaded.Token)
	require.Equal(t, users.RoleAdmin, loaded.User.Role)

	// Saving again replaces, not duplicates.
	state.Token = "tok456"
	require.NoError(t, repo.Save(state))
	loaded, found, err = repo.Load()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "tok456", loaded.Token)

	require.NoError(t, repo.Clear())
	_, found, err = repo.Load()
	require.NoError(t, err)
	require.False(t, found)
}
