package users

import (
	"time"
)

// Role represents a user's role within their school. Roles are issued by the
// server at login and are immutable for the lifetime of a session; a role
// change requires re-authentication.
type Role string

const (
	RoleDirector Role = "director" // School owner, full access
	RoleAdmin    Role = "admin"    // Administrative staff
	RoleMaestro  Role = "maestro"  // Teacher, limited to academic sections
	RolePadre    Role = "padre"    // Guardian, portal access only
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDirector, RoleAdmin, RoleMaestro, RolePadre:
		return true
	}
	return false
}

// OnboardingProgress is the per-school onboarding sub-record. CurrentStep is
// monotonic under normal flow but frozen once Skipped is set.
type OnboardingProgress struct {
	Completed     bool       `json:"completado"`
	CurrentStep   string     `json:"paso_actual,omitempty"`
	RegisteredAt  string     `json:"fecha_registro,omitempty"`
	ExpressSignup bool       `json:"es_registro_express,omitempty"`
	Skipped       bool       `json:"skipped,omitempty"`
	SkippedAt     *time.Time `json:"skipped_at,omitempty"`
}

// School is the tenant record every user belongs to. Field names match the
// wire contract, which uses Spanish keys.
type School struct {
	ID            int                `json:"id"`
	Name          string             `json:"nombre"`
	Slug          string             `json:"slug"`
	CCT           string             `json:"cct,omitempty"`
	RFC           string             `json:"rfc,omitempty"`
	RazonSocial   string             `json:"razon_social,omitempty"`
	Email         string             `json:"email"`
	Telefono      string             `json:"telefono,omitempty"`
	CodigoPostal  string             `json:"codigo_postal,omitempty"`
	RegimenFiscal string             `json:"regimen_fiscal,omitempty"`
	Active        bool               `json:"activo"`
	Onboarding    OnboardingProgress `json:"onboarding_data,omitempty"`
}

// User is the authenticated user's profile as returned by the auth endpoints.
type User struct {
	ID              int        `json:"id"`
	SchoolID        int        `json:"escuela_id"`
	Name            string     `json:"nombre"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	Role            Role       `json:"rol"`
	Active          bool       `json:"activo"`
	School          School     `json:"escuela,omitempty"`
}

// Verified reports whether the user has confirmed their email address.
// A nil EmailVerifiedAt means unverified.
func (u *User) Verified() bool {
	return u != nil && u.EmailVerifiedAt != nil
}

// HasRole reports whether the user's role is one of the given roles. An empty
// list means any role qualifies.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
