package service

import (
	"strconv"
	"strings"
	"time"

	"networth-tracker/internal/common/validation"
	"networth-tracker/internal/features/currency"
	"networth-tracker/internal/features/onboarding/models"
	sessionmodels "networth-tracker/internal/features/session/models"
)

// Workflow is one onboarding attempt: Credential -> Profile -> Complete.
// There is no way back from Profile to Credential, and a completed
// workflow accepts no further input. It is not safe for concurrent use.
type Workflow struct {
	step    models.Step
	pending models.Identity
	form    models.ProfileForm
	errors  models.FieldErrors
	now     func() time.Time
}

func NewWorkflow(now func() time.Time) *Workflow {
	if now == nil {
		now = time.Now
	}
	return &Workflow{
		step:   models.StepCredential,
		errors: models.FieldErrors{},
		now:    now,
	}
}

func (w *Workflow) Step() models.Step { return w.step }

// Status returns a copy of the attempt state.
func (w *Workflow) Status() models.Status {
	st := models.Status{
		Step:   w.step,
		Form:   w.form,
		Errors: w.errors.Clone(),
	}
	if w.form.Age != nil {
		age := *w.form.Age
		st.Form.Age = &age
	}
	if w.step != models.StepCredential {
		p := w.pending
		st.Pending = &p
	}
	return st
}

// SubmitCredentials runs p and, on success, moves to the profile step
// carrying the partial record.
func (w *Workflow) SubmitCredentials(p CredentialProvider) (models.Identity, error) {
	if w.step != models.StepCredential {
		return models.Identity{}, models.ErrWrongStep
	}

	suffix := strconv.FormatInt(w.now().UnixMilli(), 10)
	id, err := p.Authenticate(suffix)
	if err != nil {
		return models.Identity{}, err
	}

	w.pending = id
	w.step = models.StepProfile
	return id, nil
}

// Apply edits the profile form. Every edited field loses its error; errors
// on other fields are kept as they are.
func (w *Workflow) Apply(patch models.ProfilePatch) error {
	if w.step != models.StepProfile {
		return models.ErrWrongStep
	}

	if patch.Name != nil {
		w.form.Name = *patch.Name
		delete(w.errors, models.FieldName)
	}
	if patch.Gender != nil {
		w.form.Gender = *patch.Gender
		delete(w.errors, models.FieldGender)
	}
	if patch.Age != nil {
		age := *patch.Age
		w.form.Age = &age
		delete(w.errors, models.FieldAge)
	}
	if patch.Country != nil {
		w.form.Country = *patch.Country
		delete(w.errors, models.FieldCountry)
	}
	if patch.Currency != nil {
		w.form.Currency = *patch.Currency
		delete(w.errors, models.FieldCurrency)
	}
	return nil
}

// SubmitProfile validates the form and, when every field passes, emits the
// completed record. On failure the errors of all fields are recorded and
// returned as a *models.ValidationError.
func (w *Workflow) SubmitProfile() (*sessionmodels.UserRecord, error) {
	if w.step != models.StepProfile {
		return nil, models.ErrWrongStep
	}

	errs := ValidateProfile(w.form)
	w.errors = errs
	if len(errs) > 0 {
		return nil, &models.ValidationError{Fields: errs.Clone()}
	}

	w.step = models.StepComplete
	return &sessionmodels.UserRecord{
		ID:          w.pending.ID,
		Email:       w.pending.Email,
		Name:        strings.TrimSpace(w.form.Name),
		Gender:      w.form.Gender,
		Age:         *w.form.Age,
		Country:     w.form.Country,
		Currency:    w.form.Currency,
		IsOnboarded: true,
	}, nil
}

// ValidateProfile checks every field of form and collects all failures.
func ValidateProfile(form models.ProfileForm) models.FieldErrors {
	errs := models.FieldErrors{}

	if validation.IsBlank(form.Name) {
		errs[models.FieldName] = models.MsgNameRequired
	} else if validation.ValidateName(form.Name) != nil {
		errs[models.FieldName] = models.MsgNameTooLong
	}
	if !form.Gender.Valid() {
		errs[models.FieldGender] = models.MsgGenderRequired
	}
	switch {
	case form.Age == nil:
		errs[models.FieldAge] = models.MsgAgeRequired
	case !validation.IsValidAge(*form.Age):
		errs[models.FieldAge] = models.MsgAgeOutOfRange
	}
	if !sessionmodels.IsSupportedCountry(form.Country) {
		errs[models.FieldCountry] = models.MsgCountryRequired
	}
	if !currency.IsSupported(form.Currency) {
		errs[models.FieldCurrency] = models.MsgCurrencyRequired
	}

	return errs
}
