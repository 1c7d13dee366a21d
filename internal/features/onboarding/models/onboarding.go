package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	sessionmodels "networth-tracker/internal/features/session/models"
)

// Step of an onboarding attempt.
type Step string

const (
	StepCredential Step = "credential"
	StepProfile    Step = "profile"
	StepComplete   Step = "complete"
)

// CredentialMode distinguishes the sign-up and sign-in tabs of the email form.
type CredentialMode string

const (
	ModeSignUp CredentialMode = "signup"
	ModeSignIn CredentialMode = "signin"
)

// Field names of the profile form.
type Field string

const (
	FieldName     Field = "name"
	FieldGender   Field = "gender"
	FieldAge      Field = "age"
	FieldCountry  Field = "country"
	FieldCurrency Field = "currency"
)

var (
	ErrWrongStep          = errors.New("onboarding: operation not allowed in current step")
	ErrMissingCredentials = errors.New("onboarding: missing required credential fields")
	ErrPasswordMismatch   = errors.New("onboarding: passwords do not match")
	ErrInvalidEmail       = errors.New("onboarding: invalid email address")
	ErrAlreadyOnboarded   = errors.New("onboarding: session is already onboarded")
)

// Messages shown next to the credential form.
const (
	MsgMissingCredentials = "Please fill in all fields"
	MsgPasswordMismatch   = "Passwords do not match"
	MsgInvalidEmail       = "Please enter a valid email address"
)

// Messages shown next to profile fields.
const (
	MsgNameRequired     = "Name is required"
	MsgNameTooLong      = "Name is too long"
	MsgGenderRequired   = "Please select a gender"
	MsgAgeRequired      = "Age is required"
	MsgAgeOutOfRange    = "Age must be between 18 and 120"
	MsgCountryRequired  = "Please select a country"
	MsgCurrencyRequired = "Please select a currency"
)

// Identity is the partial record carried from the credential step.
type Identity struct {
	ID    string `json:"id" example:"user_1718000000000"`
	Email string `json:"email" example:"a@b.com"`
}

// EmailCredentials is the input of the email+password credential variant.
// @Description Email sign-up or sign-in form
type EmailCredentials struct {
	Email           string         `json:"email" example:"a@b.com"`
	Password        string         `json:"password" example:"secret"`
	ConfirmPassword string         `json:"confirmPassword" example:"secret"`
	Mode            CredentialMode `json:"mode" example:"signup" enums:"signup,signin"`
}

// ProfileForm is the state of the profile step. Age nil means unset.
// @Description Profile form state
type ProfileForm struct {
	Name     string               `json:"name" example:"Jane"`
	Gender   sessionmodels.Gender `json:"gender" example:"female" enums:"male,female,other"`
	Age      *int                 `json:"age" example:"30"`
	Country  string               `json:"country" example:"Canada"`
	Currency string               `json:"currency" example:"CAD"`
}

// ProfilePatch edits a subset of the profile form; nil fields are left unchanged.
// @Description Partial profile form update
type ProfilePatch struct {
	Name     *string               `json:"name,omitempty" example:"Jane"`
	Gender   *sessionmodels.Gender `json:"gender,omitempty" example:"female"`
	Age      *int                  `json:"age,omitempty" example:"30"`
	Country  *string               `json:"country,omitempty" example:"Canada"`
	Currency *string               `json:"currency,omitempty" example:"CAD"`
}

// FieldErrors maps a profile field to its message.
type FieldErrors map[Field]string

func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// Fields returns the fields with errors in a stable order.
func (fe FieldErrors) Fields() []Field {
	out := make([]Field, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidationError is returned when the profile form has field errors.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "onboarding: invalid profile (" + strings.Join(parts, "; ") + ")"
}

// Status is a snapshot of an onboarding attempt.
// @Description Onboarding attempt snapshot
type Status struct {
	Step    Step        `json:"step" example:"profile" enums:"credential,profile,complete"`
	Pending *Identity   `json:"pending,omitempty"`
	Form    ProfileForm `json:"form"`
	Errors  FieldErrors `json:"errors,omitempty"`
}
