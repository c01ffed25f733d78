package onboarding

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/internal/validate"
	"github.com/chrom13/schoolmanager-web/notify"
)

// Machine drives the onboarding transitions. Every advancing transition is a
// server call; a failed advance keeps the tenant on the current step. The
// single exception is Finish, which is best-effort and never blocks entry to
// the dashboard.
type Machine struct {
	client   *api.Client
	notifier notify.Notifier
	log      zerolog.Logger
}

// NewMachine validates its dependencies and returns the machine.
func NewMachine(client *api.Client, notifier notify.Notifier, logger zerolog.Logger) (*Machine, error) {
	if client == nil {
		return nil, errors.New("[onboarding.NewMachine] client is required")
	}
	if notifier == nil {
		return nil, errors.New("[onboarding.NewMachine] notifier is required")
	}
	return &Machine{
		client:   client,
		notifier: notifier,
		log:      logger.With().Str("component", "onboarding").Logger(),
	}, nil
}

// Status fetches the tenant's progress record.
func (m *Machine) Status(ctx context.Context) (Status, error) {
	var resp api.Envelope[Status]
	if err := m.client.Get(ctx, "/onboarding/status", nil, &resp); err != nil {
		return Status{}, errors.Wrap(err, "[Status] fetching onboarding status")
	}
	return resp.Data, nil
}

// Start is the welcome → school-data transition. It is user-initiated and
// purely local; no server call is involved. Returns the route to navigate to.
func (m *Machine) Start() string {
	return StepSchoolData.Route()
}

// CompleteSchoolData submits step 1. Local validation failures and server
// validation failures both keep the tenant on the step, with field errors
// surfaced to the form; success advances to the structure step.
func (m *Machine) CompleteSchoolData(ctx context.Context, data SchoolData) (next string, err error) {
	if err := validate.Struct(data); err != nil {
		return StepSchoolData.Route(), err
	}
	var resp api.Envelope[Status]
	if err := m.client.Post(ctx, "/onboarding/complete-school-data", data, &resp); err != nil {
		return StepSchoolData.Route(), errors.Wrap(err, "[CompleteSchoolData] submitting school data")
	}
	m.notifier.Success("Datos de la escuela guardados")
	return StepStructure.Route(), nil
}

// CompleteStructure confirms step 2. The step has no required input; it is a
// confirmation transition persisted server-side.
func (m *Machine) CompleteStructure(ctx context.Context) (next string, err error) {
	if err := m.client.Post(ctx, "/onboarding/complete-structure", nil, nil); err != nil {
		return StepStructure.Route(), errors.Wrap(err, "[CompleteStructure] confirming structure")
	}
	m.notifier.Success("Estructura académica configurada")
	return StepCompleted.Route(), nil
}

// Finish marks onboarding completed and hands the tenant to the dashboard.
// Best-effort: a failure is logged and toasted but the returned route is the
// dashboard either way; the user must not be trapped in the flow.
func (m *Machine) Finish(ctx context.Context) string {
	if err := m.client.Post(ctx, "/onboarding/complete", nil, nil); err != nil {
		m.log.Error().Err(err).Msg("finishing onboarding")
		m.notifier.Error("Error al completar onboarding")
		return "/"
	}
	m.notifier.Success("¡Configuración completada! Bienvenido a School Manager")
	return "/"
}

// Skip defers the remaining steps indefinitely. Available from any
// non-terminal step and absorbing: skipping an already-skipped tenant is a
// safe no-op from the client's perspective; the server stays authoritative.
func (m *Machine) Skip(ctx context.Context) (next string, err error) {
	if err := m.client.Post(ctx, "/onboarding/skip", nil, nil); err != nil {
		return "", errors.Wrap(err, "[Skip] skipping onboarding")
	}
	m.notifier.Success("Puedes completar la configuración desde Ajustes")
	return "/", nil
}
