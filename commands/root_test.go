package commands

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	errs "github.com/chrom13/schoolmanager-web/internal/errors"
	"github.com/chrom13/schoolmanager-web/navigation"
	"github.com/chrom13/schoolmanager-web/session"
	"github.com/chrom13/schoolmanager-web/session/storefakes"
	"github.com/chrom13/schoolmanager-web/users"
)

func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Log:   zerolog.Nop(),
		Store: session.NewStore(storefakes.NewFakeRepo(), zerolog.Nop()),
		Nav:   navigation.NewMemory("/"),
	}
}

func subcommandNames(t *testing.T, app *App, parent string) []string {
	t.Helper()
	root := Root(app)
	for _, cmd := range root.Commands() {
		if cmd.Name() != parent {
			continue
		}
		var names []string
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		return names
	}
	t.Fatalf("command %q not found", parent)
	return nil
}

func TestRoot_ResourceCommandCoverage(t *testing.T) {
	app := testApp(t)
	crud := []string{"list", "get", "create", "update", "delete"}

	for parent, extra := range map[string][]string{
		"niveles":  nil,
		"grados":   nil,
		"grupos":   nil,
		"materias": nil,
		"alumnos":  {"search"},
		"padres":   {"search", "alumnos", "link", "update-link", "unlink"},
	} {
		t.Run(parent, func(t *testing.T) {
			names := subcommandNames(t, app, parent)
			for _, want := range append(crud, extra...) {
				require.Contains(t, names, want)
			}
		})
	}
}

func TestResolveRoute_VerificationGate(t *testing.T) {
	verifiedAt := time.Now()

	login := func(app *App, verified bool) {
		user := &users.User{ID: 1, Email: "a@b.com", Role: users.RoleDirector}
		if verified {
			user.EmailVerifiedAt = &verifiedAt
		}
		app.Store.Login("tok123", user)
	}

	resolve := func(t *testing.T, app *App, name string) error {
		root := Root(app)
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				return resolveRoute(app, cmd)
			}
		}
		t.Fatalf("command %q not found", name)
		return nil
	}

	t.Run("unverified user can sign out", func(t *testing.T) {
		app := testApp(t)
		login(app, false)
		require.NoError(t, resolve(t, app, "logout"))
	})

	t.Run("unverified user can refresh the profile", func(t *testing.T) {
		app := testApp(t)
		login(app, false)
		require.NoError(t, resolve(t, app, "whoami"))
	})

	t.Run("unverified user is held at the gate elsewhere", func(t *testing.T) {
		app := testApp(t)
		login(app, false)
		err := resolve(t, app, "menu")
		require.Error(t, err)
		require.True(t, errs.Is(err, errs.ErrEmailNotVerified))
	})

	t.Run("verified user passes", func(t *testing.T) {
		app := testApp(t)
		login(app, true)
		require.NoError(t, resolve(t, app, "menu"))
	})

	t.Run("signed-out user is sent to login", func(t *testing.T) {
		app := testApp(t)
		err := resolve(t, app, "logout")
		require.Error(t, err)
		require.True(t, errs.Is(err, errs.ErrNotAuthenticated))
	})
}
