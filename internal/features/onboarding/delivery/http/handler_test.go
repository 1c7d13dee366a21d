package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"networth-tracker/internal/common/middleware"
	"networth-tracker/internal/features/onboarding/models"
	"networth-tracker/internal/features/onboarding/service"
	sessionmodels "networth-tracker/internal/features/session/models"
)

type memSession struct{ user *sessionmodels.UserRecord }

func (m *memSession) SetUser(u *sessionmodels.UserRecord) { m.user = u }
func (m *memSession) Persist(context.Context) error       { return nil }
func (m *memSession) IsOnboarded() bool                   { return m.user != nil && m.user.IsOnboarded }

func setup(t *testing.T) (*gin.Engine, *memSession) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sess := &memSession{}
	now := func() time.Time { return time.UnixMilli(1718000000000) }
	h := NewOnboardingHandler(service.NewOnboardingService(sess, now, zerolog.Nop()), zerolog.Nop())

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.HandleErrors(zerolog.Nop()))
	h.RegisterRoutes(r.Group("/api/v1"))
	return r, sess
}

func send(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOnboardingHandler_FullFlow(t *testing.T) {
	r, sess := setup(t)

	w := send(r, http.MethodGet, "/api/v1/onboarding", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var st models.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, models.StepCredential, st.Step)

	w = send(r, http.MethodPost, "/api/v1/onboarding/credentials/email", gin.H{
		"email": "a@b.com", "password": "x", "confirmPassword": "x", "mode": "signup",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, models.StepProfile, st.Step)
	assert.Equal(t, "user_1718000000000", st.Pending.ID)

	w = send(r, http.MethodPatch, "/api/v1/onboarding/profile", gin.H{"name": "Jane", "age": 30})
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodPost, "/api/v1/onboarding/profile", gin.H{
		"gender": "female", "country": "Canada", "currency": "CAD",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user sessionmodels.UserRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Jane", user.Name)
	assert.True(t, user.IsOnboarded)
	require.NotNil(t, sess.user)
	assert.Equal(t, "user_1718000000000", sess.user.ID)

	w = send(r, http.MethodPost, "/api/v1/onboarding/credentials/federated", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOnboardingHandler_CredentialErrors(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
		code string
	}{
		{"missing", gin.H{"email": "", "password": "x"}, "MISSING_CREDENTIALS"},
		{"mismatch", gin.H{"email": "a@b.com", "password": "x", "confirmPassword": "y"}, "PASSWORD_MISMATCH"},
		{"invalid email", gin.H{"email": "nope", "password": "x", "confirmPassword": "x"}, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setup(t)
			w := send(r, http.MethodPost, "/api/v1/onboarding/credentials/email", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, string(body.Error.Code))
		})
	}
}

func TestOnboardingHandler_MalformedBody(t *testing.T) {
	r, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/credentials/email", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOnboardingHandler_ProfileValidation(t *testing.T) {
	r, sess := setup(t)

	w := send(r, http.MethodPost, "/api/v1/onboarding/credentials/federated", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodPost, "/api/v1/onboarding/profile", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 5)
	fields := make([]interface{}, 0, len(body.Errors))
	for _, e := range body.Errors {
		fields = append(fields, e.Details["field"])
	}
	assert.ElementsMatch(t, []interface{}{"name", "gender", "age", "country", "currency"}, fields)
	assert.Nil(t, sess.user)

	// editing one field clears only its error
	w = send(r, http.MethodPatch, "/api/v1/onboarding/profile", gin.H{"name": "Jane"})
	require.Equal(t, http.StatusOK, w.Code)
	var st models.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Len(t, st.Errors, 4)
	assert.NotContains(t, st.Errors, models.FieldName)
}

func TestOnboardingHandler_ProfileBeforeCredentials(t *testing.T) {
	r, _ := setup(t)

	w := send(r, http.MethodPatch, "/api/v1/onboarding/profile", gin.H{"name": "Jane"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "WRONG_ONBOARDING_STEP")
}
