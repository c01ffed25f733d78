package guard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chrom13/schoolmanager-web/guard"
	"github.com/chrom13/schoolmanager-web/session"
	"github.com/chrom13/schoolmanager-web/users"
)

func verifiedUser(role users.Role) *users.User {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &users.User{ID: 1, Role: role, EmailVerifiedAt: &at}
}

func unverifiedUser() *users.User {
	return &users.User{ID: 1, Role: users.RoleDirector}
}

func TestResolve_Unauthenticated(t *testing.T) {
	// Whatever else is going on, no session means login-redirect.
	paths := []string{"/", "/niveles", "/alumnos", "/verify-email-pending", "/onboarding/paso-1", "/configuracion"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			d := guard.Resolve(session.Session{}, path)
			require.Equal(t, guard.RedirectLogin, d.Outcome)
			require.Equal(t, guard.RouteLogin, d.Target)
		})
	}

	t.Run("token without user is not authenticated", func(t *testing.T) {
		d := guard.Resolve(session.Session{Token: "tok123"}, "/")
		require.Equal(t, guard.RedirectLogin, d.Outcome)
	})
}

func TestResolve_UnverifiedEmail(t *testing.T) {
	s := session.Session{Token: "tok123", User: unverifiedUser()}

	t.Run("protected routes redirect to verification", func(t *testing.T) {
		for _, path := range []string{"/", "/niveles", "/alumnos"} {
			d := guard.Resolve(s, path)
			require.Equal(t, guard.RedirectVerify, d.Outcome, "path %s", path)
			require.Equal(t, guard.RouteVerifyPending, d.Target)
		}
	})

	t.Run("verification-pending route itself is allowed", func(t *testing.T) {
		d := guard.Resolve(s, guard.RouteVerifyPending)
		require.Equal(t, guard.Allow, d.Outcome)
	})

	t.Run("onboarding subtree bypasses the verification gate", func(t *testing.T) {
		for _, path := range []string{"/onboarding", "/onboarding/bienvenida", "/onboarding/paso-1"} {
			d := guard.Resolve(s, path)
			require.Equal(t, guard.Allow, d.Outcome, "path %s", path)
		}
	})
}

func TestResolve_VerifiedAllow(t *testing.T) {
	s := session.Session{Token: "tok123", User: verifiedUser(users.RoleDirector)}
	d := guard.Resolve(s, "/")
	require.Equal(t, guard.Allow, d.Outcome)
	require.Equal(t, "/", d.Target)
}

func TestResolve_OnboardingNeverReEnforced(t *testing.T) {
	// A verified user whose onboarding is incomplete and not skipped is
	// still allowed straight to the dashboard; onboarding is advisory.
	u := verifiedUser(users.RoleDirector)
	u.School.Onboarding = users.OnboardingProgress{Completed: false, Skipped: false, CurrentStep: "datos_escuela"}
	d := guard.Resolve(session.Session{Token: "tok123", User: u}, "/")
	require.Equal(t, guard.Allow, d.Outcome)
}

func TestLoginScenario(t *testing.T) {
	// Login followed by navigation to the dashboard: the outcome depends
	// only on the email-verification timestamp.
	t.Run("unverified lands on verify-redirect", func(t *testing.T) {
		s := session.Session{Token: "tok123", User: unverifiedUser()}
		require.True(t, s.Authenticated())
		d := guard.Resolve(s, "/")
		require.Equal(t, guard.RedirectVerify, d.Outcome)
	})

	t.Run("verified lands on allow", func(t *testing.T) {
		s := session.Session{Token: "tok123", User: verifiedUser(users.RoleDirector)}
		d := guard.Resolve(s, "/")
		require.Equal(t, guard.Allow, d.Outcome)
	})
}

func TestCanView(t *testing.T) {
	admin := guard.Section{Title: "Alumnos", Path: "/alumnos", AllowedRoles: []users.Role{users.RoleDirector, users.RoleAdmin}}
	open := guard.Section{Title: "Perfil", Path: "/perfil"}

	require.True(t, guard.CanView(users.RoleDirector, admin))
	require.True(t, guard.CanView(users.RoleAdmin, admin))
	require.False(t, guard.CanView(users.RoleMaestro, admin))
	require.False(t, guard.CanView(users.RolePadre, admin))

	// Empty allow-set means visible to all authenticated roles.
	for _, role := range []users.Role{users.RoleDirector, users.RoleAdmin, users.RoleMaestro, users.RolePadre} {
		require.True(t, guard.CanView(role, open))
	}
}

func TestVisible(t *testing.T) {
	sections := guard.Sections()

	t.Run("maestro sees only teaching sections", func(t *testing.T) {
		visible := guard.Visible(users.RoleMaestro, sections)
		var paths []string
		for _, s := range visible {
			paths = append(paths, s.Path)
		}
		require.Equal(t, []string{"/calificaciones", "/asistencias"}, paths)
	})

	t.Run("director sees everything", func(t *testing.T) {
		require.Len(t, guard.Visible(users.RoleDirector, sections), len(sections))
	})

	t.Run("configuracion is director only", func(t *testing.T) {
		for _, s := range guard.Visible(users.RoleAdmin, sections) {
			require.NotEqual(t, "/configuracion", s.Path)
		}
	})
}

func TestPublic(t *testing.T) {
	require.True(t, guard.Public(guard.RouteLogin))
	require.True(t, guard.Public(guard.RouteRegister))
	require.True(t, guard.Public("/forgot-password"))
	require.False(t, guard.Public("/"))
	require.False(t, guard.Public("/onboarding/paso-1"))
}
