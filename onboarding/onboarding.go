// Package onboarding sequences a newly registered tenant through the guided
// setup flow: welcome → school data → structure → completed, with an
// absorbing skip available from any non-terminal step. Progress is persisted
// server-side; the client reflects it and decides the next route.
package onboarding

import (
	"time"
)

// Step is a position in the onboarding flow, using the server's vocabulary.
type Step string

const (
	StepWelcome    Step = "bienvenida"
	StepSchoolData Step = "datos_escuela"
	StepStructure  Step = "estructura"
	StepCompleted  Step = "completado"
	// StepDashboard is reported by the server once the tenant has moved on.
	StepDashboard Step = "dashboard"
)

// Terminal reports whether no further setup transitions are possible.
func (s Step) Terminal() bool {
	return s == StepCompleted || s == StepDashboard
}

// Route returns the client route that renders the step.
func (s Step) Route() string {
	switch s {
	case StepWelcome:
		return "/onboarding/bienvenida"
	case StepSchoolData:
		return "/onboarding/paso-1"
	case StepStructure:
		return "/onboarding/paso-2"
	case StepCompleted:
		return "/onboarding/completado"
	default:
		return "/"
	}
}

// Status is the server's onboarding progress record for the tenant.
type Status struct {
	Completed     bool       `json:"completado"`
	CurrentStep   Step       `json:"paso_actual"`
	RegisteredAt  string     `json:"fecha_registro"`
	ExpressSignup bool       `json:"es_registro_express"`
	Skipped       bool       `json:"skipped,omitempty"`
	SkippedAt     *time.Time `json:"skipped_at,omitempty"`
}

// Finished reports whether navigation should treat onboarding as done.
// Skipping freezes CurrentStep but counts as finished even though Completed
// may remain false.
func (s Status) Finished() bool {
	return s.Completed || s.Skipped
}

// SchoolData is the step-1 form: the school details express registration
// deferred.
type SchoolData struct {
	CCT          string `json:"cct" validate:"required"`
	EmailEscuela string `json:"email_escuela" validate:"required,email"`
	RFC          string `json:"rfc,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	CodigoPostal string `json:"codigo_postal,omitempty"`
}
