// Package guard decides whether a navigation attempt is allowed. It is pure:
// every decision is a function of the current session snapshot and the
// requested path, with no I/O and no loading state.
package guard

import (
	"strings"

	"github.com/chrom13/schoolmanager-web/session"
)

// Well-known routes.
const (
	RouteLogin         = "/login"
	RouteRegister      = "/register"
	RouteVerifyPending = "/verify-email-pending"
	RouteDashboard     = "/"
	RouteOnboarding    = "/onboarding"
)

// Outcome is the result of a guard decision. Exactly three outcomes are
// reachable for a protected navigation attempt.
type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectVerify
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "login-redirect"
	case RedirectVerify:
		return "verify-redirect"
	}
	return "unknown"
}

// Decision pairs an outcome with the path to navigate to. Target equals the
// requested path when the outcome is Allow.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Resolve runs the ordered decision procedure for a protected route:
// authentication first, then email verification. Onboarding progress is
// never consulted: a verified user with incomplete onboarding navigating to
// the dashboard is allowed through, and the onboarding subtree itself is
// intentionally exempt from the verification gate so a freshly registered,
// not-yet-verified tenant can finish setup.
func Resolve(s session.Session, path string) Decision {
	if !s.Authenticated() {
		return Decision{Outcome: RedirectLogin, Target: RouteLogin}
	}
	if !s.Verified() && path != RouteVerifyPending && !isOnboardingPath(path) {
		return Decision{Outcome: RedirectVerify, Target: RouteVerifyPending}
	}
	return Decision{Outcome: Allow, Target: path}
}

// Public reports whether path needs no session at all.
func Public(path string) bool {
	switch path {
	case RouteLogin, RouteRegister, "/register-express", "/forgot-password", "/reset-password", "/verify-email":
		return true
	}
	return false
}

func isOnboardingPath(path string) bool {
	return path == RouteOnboarding || strings.HasPrefix(path, RouteOnboarding+"/")
}
