// Package auth implements the authentication operations of the client:
// login, registration (full and express), profile refresh, logout and the
// password/email flows. It is the only writer of the session store besides
// the 401 invalidation hook.
package auth

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/internal/validate"
	"github.com/chrom13/schoolmanager-web/session"
	"github.com/chrom13/schoolmanager-web/users"
)

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterData is the full registration form: school and director account in
// one step.
type RegisterData struct {
	NombreEscuela        string `json:"nombre_escuela" validate:"required"`
	Slug                 string `json:"slug" validate:"required"`
	CCT                  string `json:"cct" validate:"required"`
	RFC                  string `json:"rfc,omitempty"`
	EmailEscuela         string `json:"email_escuela" validate:"required,email"`
	Nombre               string `json:"nombre" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// RegisterExpressData is the short-form signup: school name and credentials
// only, the rest is collected during onboarding. Nombre is optional; the
// server infers it from the email when absent.
type RegisterExpressData struct {
	NombreEscuela        string `json:"nombre_escuela" validate:"required"`
	Nombre               string `json:"nombre,omitempty"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// ResetData is the password-reset form submitted from the emailed link.
type ResetData struct {
	Email                string `json:"email" validate:"required,email"`
	Token                string `json:"token" validate:"required"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// ExpressResult is what express registration reports back to the caller.
type ExpressResult struct {
	User               *users.User
	School             users.School
	OnboardingRequired bool
}

// Service bundles the auth operations over the transport and session store.
type Service struct {
	client *api.Client
	store  *session.Store
	log    zerolog.Logger
}

// NewService validates its required dependencies and returns the service.
func NewService(client *api.Client, store *session.Store, logger zerolog.Logger) (*Service, error) {
	if client == nil {
		return nil, errors.New("[auth.NewService] client is required")
	}
	if store == nil {
		return nil, errors.New("[auth.NewService] store is required")
	}
	return &Service{
		client: client,
		store:  store,
		log:    logger.With().Str("component", "auth").Logger(),
	}, nil
}

// Login authenticates with email and password and installs the session.
func (s *Service) Login(ctx context.Context, creds Credentials) (*users.User, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, err
	}
	var resp struct {
		Token string      `json:"token"`
		User  *users.User `json:"user"`
	}
	if err := s.client.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, errors.Wrap(err, "[Login] posting credentials")
	}
	s.store.Login(resp.Token, resp.User)
	return resp.User, nil
}

// Register creates a school and its director account, then installs the
// session from the returned token.
func (s *Service) Register(ctx context.Context, data RegisterData) (*users.User, error) {
	if err := validate.Struct(data); err != nil {
		return nil, err
	}
	var resp struct {
		Token   string       `json:"token"`
		User    *users.User  `json:"user"`
		Escuela users.School `json:"escuela"`
	}
	if err := s.client.Post(ctx, "/auth/register", data, &resp); err != nil {
		return nil, errors.Wrap(err, "[Register] posting registration")
	}
	if resp.User != nil {
		resp.User.School = resp.Escuela
	}
	s.store.Login(resp.Token, resp.User)
	return resp.User, nil
}

// RegisterExpress runs the short signup. The response is enveloped, unlike
// the other auth endpoints, and carries the onboarding_required flag that
// sends the new tenant into the setup flow.
func (s *Service) RegisterExpress(ctx context.Context, data RegisterExpressData) (*ExpressResult, error) {
	if err := validate.Struct(data); err != nil {
		return nil, err
	}
	var resp api.Envelope[struct {
		Usuario            *users.User  `json:"usuario"`
		Escuela            users.School `json:"escuela"`
		Token              string       `json:"token"`
		OnboardingRequired bool         `json:"onboarding_required"`
	}]
	if err := s.client.Post(ctx, "/auth/register-express", data, &resp); err != nil {
		return nil, errors.Wrap(err, "[RegisterExpress] posting registration")
	}
	user := resp.Data.Usuario
	if user != nil {
		user.School = resp.Data.Escuela
	}
	s.store.Login(resp.Data.Token, user)
	return &ExpressResult{
		User:               user,
		School:             resp.Data.Escuela,
		OnboardingRequired: resp.Data.OnboardingRequired,
	}, nil
}

// Me fetches the current profile and refreshes the stored one, leaving the
// token untouched.
func (s *Service) Me(ctx context.Context) (*users.User, error) {
	var resp api.Envelope[*users.User]
	if err := s.client.Get(ctx, "/auth/me", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "[Me] fetching profile")
	}
	s.store.SetUser(resp.Data)
	return resp.Data, nil
}

// Logout revokes the token server-side on a best-effort basis and always
// clears the local session.
func (s *Service) Logout(ctx context.Context) {
	if err := s.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.log.Warn().Err(err).Msg("server-side logout failed")
	}
	s.store.Logout()
}

// ForgotPassword requests a reset link for the given address. The returned
// message is shown to the user whether or not the address exists.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message  string `json:"message"`
		ResetURL string `json:"reset_url,omitempty"`
	}
	body := map[string]string{"email": email}
	if err := s.client.Post(ctx, "/auth/forgot-password", body, &resp); err != nil {
		return "", errors.Wrap(err, "[ForgotPassword] requesting reset")
	}
	return resp.Message, nil
}

// ResetPassword completes the reset flow with the emailed token.
func (s *Service) ResetPassword(ctx context.Context, data ResetData) (string, error) {
	if err := validate.Struct(data); err != nil {
		return "", err
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := s.client.Post(ctx, "/auth/reset-password", data, &resp); err != nil {
		return "", errors.Wrap(err, "[ResetPassword] submitting reset")
	}
	return resp.Message, nil
}

// VerifyEmail confirms an address from the signed link parameters. On
// success the stored profile is refreshed so the verification gate lifts
// without a re-login.
func (s *Service) VerifyEmail(ctx context.Context, id int, hash string) (string, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(id))
	query.Set("hash", hash)
	var resp struct {
		Message string `json:"message"`
	}
	if err := s.client.Get(ctx, "/auth/verify-email", query, &resp); err != nil {
		return "", errors.Wrap(err, "[VerifyEmail] confirming address")
	}
	if s.store.Get().Authenticated() {
		if _, err := s.Me(ctx); err != nil {
			s.log.Warn().Err(err).Msg("refreshing profile after verification")
		}
	}
	return resp.Message, nil
}
