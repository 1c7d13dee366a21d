package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"networth-tracker/internal/common/config"
	dashboardStore "networth-tracker/internal/features/dashboard/repository/store"
	dashboardService "networth-tracker/internal/features/dashboard/service"
	onboardingService "networth-tracker/internal/features/onboarding/service"
	sessionModels "networth-tracker/internal/features/session/models"
	sessionStore "networth-tracker/internal/features/session/repository/store"
	sessionService "networth-tracker/internal/features/session/service"
	"networth-tracker/internal/platform/kv"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Origin = "http://localhost:3000"
	cfg.Server.APIVersion = "v1"
	cfg.Session.Key = "networth_user"
	cfg.Dashboard.ItemsKey = "networth_items"
	cfg.Dashboard.HistoryKey = "networth_history"
	return cfg
}

func newTestRouter(t *testing.T, store kv.Store) (*gin.Engine, *sessionService.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	log := zerolog.Nop()
	now := func() time.Time { return time.UnixMilli(1718000000000) }

	sess := sessionService.New(sessionStore.NewSessionRepository(store, cfg.Session.Key), log)
	onb := onboardingService.NewOnboardingService(sess, now, log)
	dash := dashboardService.NewDashboardService(
		dashboardStore.NewDashboardRepository(store, cfg.Dashboard.ItemsKey, cfg.Dashboard.HistoryKey, nil), now, log)

	return NewRouter(Deps{Config: cfg, Log: log, Store: store, Session: sess, Onboarding: onb, Dashboard: dash}), sess
}

func request(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
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

func TestRouter_Probes(t *testing.T) {
	r, _ := newTestRouter(t, kv.NewMemoryStore())

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/live", nil).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/ready", nil).Code)
}

type downStore struct{ kv.Store }

func (downStore) Ping(context.Context) error { return errors.New("dial tcp: refused") }

func TestRouter_NotReadyWhenStorageDown(t *testing.T) {
	r, _ := newTestRouter(t, downStore{kv.NewMemoryStore()})

	w := request(r, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// The whole user journey: onboarding, dashboard, restart, logout.
func TestRouter_Journey(t *testing.T) {
	store := kv.NewMemoryStore()
	r, _ := newTestRouter(t, store)

	w := request(r, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, http.MethodPost, "/api/v1/onboarding/credentials/email", gin.H{
		"email": "a@b.com", "password": "x", "confirmPassword": "x",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(r, http.MethodPost, "/api/v1/onboarding/profile", gin.H{
		"name": "Jane", "gender": "female", "age": 30, "country": "Canada", "currency": "CAD",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(r, http.MethodGet, "/api/v1/session", nil)
	var st sessionModels.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.True(t, st.IsOnboarded)
	assert.Equal(t, "$", st.CurrencySymbol)

	w = request(r, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// a restarted process rehydrates the persisted session
	r2, sess2 := newTestRouter(t, store)
	sess2.Init(context.Background())
	w = request(r2, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = request(r2, http.MethodPost, "/api/v1/session/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = request(r2, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, err := store.Get(context.Background(), "networth_user")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestRouter_CORS(t *testing.T) {
	r, _ := newTestRouter(t, kv.NewMemoryStore())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/session", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
