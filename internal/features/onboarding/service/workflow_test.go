package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"networth-tracker/internal/features/onboarding/models"
	sessionmodels "networth-tracker/internal/features/session/models"
)

var fixedNow = time.UnixMilli(1718000000000)

func clock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func janePatch() models.ProfilePatch {
	return models.ProfilePatch{
		Name:     ptr("Jane"),
		Gender:   ptr(sessionmodels.GenderFemale),
		Age:      ptr(30),
		Country:  ptr("Canada"),
		Currency: ptr("CAD"),
	}
}

func signup(email, password, confirm string) EmailProvider {
	return EmailProvider{Credentials: models.EmailCredentials{
		Email: email, Password: password, ConfirmPassword: confirm, Mode: models.ModeSignUp,
	}}
}

func TestWorkflow_EndToEnd(t *testing.T) {
	w := NewWorkflow(clock)
	assert.Equal(t, models.StepCredential, w.Step())
	assert.Nil(t, w.Status().Pending)

	id, err := w.SubmitCredentials(signup("a@b.com", "x", "x"))
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "user_1718000000000", Email: "a@b.com"}, id)
	assert.Equal(t, models.StepProfile, w.Step())
	assert.Equal(t, &id, w.Status().Pending)

	require.NoError(t, w.Apply(janePatch()))
	user, err := w.SubmitProfile()
	require.NoError(t, err)

	assert.Equal(t, &sessionmodels.UserRecord{
		ID:          "user_1718000000000",
		Email:       "a@b.com",
		Name:        "Jane",
		Gender:      sessionmodels.GenderFemale,
		Age:         30,
		Country:     "Canada",
		Currency:    "CAD",
		IsOnboarded: true,
	}, user)
	assert.Equal(t, models.StepComplete, w.Step())
	assert.NoError(t, user.ValidateOnboarded())
}

func TestWorkflow_CredentialErrors(t *testing.T) {
	tests := []struct {
		name string
		p    CredentialProvider
		want error
	}{
		{"missing email", signup("", "x", "x"), models.ErrMissingCredentials},
		{"missing password", signup("a@b.com", "", ""), models.ErrMissingCredentials},
		{"whitespace email", signup("   ", "x", "x"), models.ErrMissingCredentials},
		{"password mismatch", signup("a@b.com", "x", "y"), models.ErrPasswordMismatch},
		{"invalid email", signup("not-an-email", "x", "x"), models.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorkflow(clock)
			_, err := w.SubmitCredentials(tt.p)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, models.StepCredential, w.Step())
			assert.Nil(t, w.Status().Pending)
		})
	}
}

func TestWorkflow_SignInSkipsConfirmation(t *testing.T) {
	w := NewWorkflow(clock)
	p := EmailProvider{Credentials: models.EmailCredentials{
		Email: "a@b.com", Password: "x", Mode: models.ModeSignIn,
	}}

	id, err := w.SubmitCredentials(p)
	require.NoError(t, err)
	assert.Equal(t, "user_1718000000000", id.ID)
}

func TestWorkflow_Federated(t *testing.T) {
	w := NewWorkflow(clock)

	id, err := w.SubmitCredentials(FederatedProvider{})
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "google_user_1718000000000", Email: "google.user@example.com"}, id)
	assert.Equal(t, models.StepProfile, w.Step())
}

func TestWorkflow_NoTransitionBackToCredential(t *testing.T) {
	w := NewWorkflow(clock)
	_, err := w.SubmitCredentials(FederatedProvider{})
	require.NoError(t, err)

	_, err = w.SubmitCredentials(signup("a@b.com", "x", "x"))
	assert.ErrorIs(t, err, models.ErrWrongStep)
	assert.Equal(t, "google_user_1718000000000", w.Status().Pending.ID)
}

func TestWorkflow_ProfileBeforeCredentials(t *testing.T) {
	w := NewWorkflow(clock)

	assert.ErrorIs(t, w.Apply(janePatch()), models.ErrWrongStep)
	_, err := w.SubmitProfile()
	assert.ErrorIs(t, err, models.ErrWrongStep)
}

func TestWorkflow_CompletedAcceptsNothing(t *testing.T) {
	w := NewWorkflow(clock)
	_, err := w.SubmitCredentials(FederatedProvider{})
	require.NoError(t, err)
	require.NoError(t, w.Apply(janePatch()))
	_, err = w.SubmitProfile()
	require.NoError(t, err)

	_, err = w.SubmitProfile()
	assert.ErrorIs(t, err, models.ErrWrongStep)
	assert.ErrorIs(t, w.Apply(janePatch()), models.ErrWrongStep)
	_, err = w.SubmitCredentials(FederatedProvider{})
	assert.ErrorIs(t, err, models.ErrWrongStep)
}

func TestWorkflow_AllFieldsEmpty(t *testing.T) {
	w := NewWorkflow(clock)
	_, err := w.SubmitCredentials(FederatedProvider{})
	require.NoError(t, err)

	user, err := w.SubmitProfile()
	assert.Nil(t, user)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 5)
	assert.Equal(t, models.FieldErrors{
		models.FieldName:     models.MsgNameRequired,
		models.FieldGender:   models.MsgGenderRequired,
		models.FieldAge:      models.MsgAgeRequired,
		models.FieldCountry:  models.MsgCountryRequired,
		models.FieldCurrency: models.MsgCurrencyRequired,
	}, verr.Fields)
	assert.Equal(t, models.StepProfile, w.Step())
	assert.Len(t, w.Status().Errors, 5)
}

func TestWorkflow_EditClearsOnlyThatFieldError(t *testing.T) {
	w := NewWorkflow(clock)
	_, err := w.SubmitCredentials(FederatedProvider{})
	require.NoError(t, err)
	_, err = w.SubmitProfile()
	require.Error(t, err)

	// An invalid value still clears the error until the next submit.
	require.NoError(t, w.Apply(models.ProfilePatch{Age: ptr(5)}))

	errs := w.Status().Errors
	assert.NotContains(t, errs, models.FieldAge)
	assert.Len(t, errs, 4)

	_, err = w.SubmitProfile()
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.MsgAgeOutOfRange, verr.Fields[models.FieldAge])
}

func TestValidateProfile_Age(t *testing.T) {
	base := models.ProfileForm{
		Name: "Jane", Gender: sessionmodels.GenderFemale, Country: "Canada", Currency: "CAD",
	}

	tests := []struct {
		age     *int
		wantErr string
	}{
		{nil, models.MsgAgeRequired},
		{ptr(17), models.MsgAgeOutOfRange},
		{ptr(18), ""},
		{ptr(120), ""},
		{ptr(121), models.MsgAgeOutOfRange},
	}
	for _, tt := range tests {
		form := base
		form.Age = tt.age
		errs := ValidateProfile(form)
		if tt.wantErr == "" {
			assert.Empty(t, errs)
		} else {
			assert.Equal(t, models.FieldErrors{models.FieldAge: tt.wantErr}, errs)
		}
	}
}

func TestValidateProfile_Fields(t *testing.T) {
	valid := models.ProfileForm{
		Name: "Jane", Gender: sessionmodels.GenderOther, Age: ptr(40), Country: "Spain", Currency: "EUR",
	}
	assert.Empty(t, ValidateProfile(valid))

	tests := []struct {
		name   string
		mutate func(f *models.ProfileForm)
		field  models.Field
	}{
		{"empty name", func(f *models.ProfileForm) { f.Name = "" }, models.FieldName},
		{"whitespace name", func(f *models.ProfileForm) { f.Name = " \t " }, models.FieldName},
		{"overlong name", func(f *models.ProfileForm) { f.Name = strings.Repeat("a", 101) }, models.FieldName},
		{"unknown gender", func(f *models.ProfileForm) { f.Gender = "robot" }, models.FieldGender},
		{"unknown country", func(f *models.ProfileForm) { f.Country = "Atlantis" }, models.FieldCountry},
		{"unknown currency", func(f *models.ProfileForm) { f.Currency = "ZZZ" }, models.FieldCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			errs := ValidateProfile(form)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateProfile_NameLength(t *testing.T) {
	form := models.ProfileForm{
		Name: strings.Repeat("a", 100), Gender: sessionmodels.GenderMale, Age: ptr(30), Country: "Canada", Currency: "CAD",
	}
	assert.Empty(t, ValidateProfile(form))

	form.Name += "a"
	assert.Equal(t, models.FieldErrors{models.FieldName: models.MsgNameTooLong}, ValidateProfile(form))
}

func TestWorkflow_StatusIsACopy(t *testing.T) {
	w := NewWorkflow(clock)
	_, err := w.SubmitCredentials(FederatedProvider{})
	require.NoError(t, err)
	require.NoError(t, w.Apply(models.ProfilePatch{Age: ptr(30)}))

	st := w.Status()
	*st.Form.Age = 99
	st.Errors[models.FieldName] = "x"

	assert.Equal(t, 30, *w.Status().Form.Age)
	assert.Empty(t, w.Status().Errors)
}
