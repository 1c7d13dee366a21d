package service

import (
	"strings"

	"networth-tracker/internal/common/validation"
	"networth-tracker/internal/features/onboarding/models"
)

// FederatedEmail is the placeholder address given to federated sign-ins.
const FederatedEmail = "google.user@example.com"

// CredentialProvider captures an identity during the credential step.
// Both implementations are stubs: no credential is checked against anything,
// an identifier is synthesized from the given unique suffix.
type CredentialProvider interface {
	Authenticate(suffix string) (models.Identity, error)
}

// EmailProvider is the email+password variant.
type EmailProvider struct {
	Credentials models.EmailCredentials
}

func (p EmailProvider) Authenticate(suffix string) (models.Identity, error) {
	c := p.Credentials
	email := strings.TrimSpace(c.Email)

	if email == "" || c.Password == "" {
		return models.Identity{}, models.ErrMissingCredentials
	}
	if validation.ValidateEmail(email) != nil {
		return models.Identity{}, models.ErrInvalidEmail
	}
	if c.Mode != models.ModeSignIn && c.Password != c.ConfirmPassword {
		return models.Identity{}, models.ErrPasswordMismatch
	}

	return models.Identity{ID: "user_" + suffix, Email: email}, nil
}

// FederatedProvider is the Google-style variant. It needs no password fields.
type FederatedProvider struct{}

func (FederatedProvider) Authenticate(suffix string) (models.Identity, error) {
	return models.Identity{ID: "google_user_" + suffix, Email: FederatedEmail}, nil
}
