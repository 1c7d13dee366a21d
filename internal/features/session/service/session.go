package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"networth-tracker/internal/features/currency"
	"networth-tracker/internal/features/session/models"
	"networth-tracker/internal/features/session/repository"
	"networth-tracker/internal/platform/kv"
)

// ErrNotPersistable is returned by Persist when there is no onboarded user to write.
var ErrNotPersistable = errors.New("session: only onboarded users can be persisted")

// Session is the single source of truth for who is using the application
// and how far along they are. The zero value is not usable; call New.
type Session struct {
	mu   sync.RWMutex
	user *models.UserRecord

	repo repository.SessionRepository
	log  zerolog.Logger
}

func New(repo repository.SessionRepository, log zerolog.Logger) *Session {
	return &Session{
		repo: repo,
		log:  log.With().Str("component", "session").Logger(),
	}
}

// SetUser replaces the current user wholesale. It does not persist.
func (s *Session) SetUser(user *models.UserRecord) {
	c := user.Clone()

	s.mu.Lock()
	s.user = c
	s.mu.Unlock()
}

// Logout forgets the current user. Persisted storage is left untouched; see Teardown.
func (s *Session) Logout() {
	s.SetUser(nil)
}

// CurrentUser returns a copy of the current user, or nil.
func (s *Session) CurrentUser() *models.UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) IsOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsOnboarded
}

// State returns a consistent snapshot of the derived session flags.
func (s *Session) State() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.State{
		IsAuthenticated: s.user != nil,
		User:            s.user.Clone(),
		CurrencySymbol:  currency.DefaultSymbol,
	}
	if s.user != nil {
		st.IsOnboarded = s.user.IsOnboarded
		st.CurrencySymbol = currency.SymbolOf(s.user.Currency)
	}
	return st
}

// Rehydrate restores the session from a previously persisted value. A value
// that does not decode into a complete onboarded record is discarded, the
// persisted copy is cleared and the session stays unauthenticated. It never
// fails past this boundary and reports whether a user was restored.
func (s *Session) Rehydrate(ctx context.Context, raw []byte) bool {
	user, err := decodeUser(raw)
	if err != nil {
		s.log.Warn().Err(err).Int("bytes", len(raw)).Msg("Discarding malformed persisted session")
		s.SetUser(nil)
		if cerr := s.repo.Clear(ctx); cerr != nil {
			s.log.Error().Err(cerr).Msg("Failed to clear persisted session")
		}
		return false
	}

	s.SetUser(user)
	s.log.Info().Str("user_id", user.ID).Msg("Session rehydrated")
	return true
}

// Persist writes the current user through to storage. Only onboarded users
// are written. On a storage failure the in-memory session stays authoritative.
func (s *Session) Persist(ctx context.Context) error {
	user := s.CurrentUser()
	if user == nil || !user.IsOnboarded {
		return ErrNotPersistable
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("persist session %s: %w", user.ID, err)
	}
	return nil
}

// Init restores the session from storage on startup.
func (s *Session) Init(ctx context.Context) {
	raw, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		s.log.Debug().Msg("No persisted session")
		return
	case err != nil:
		s.log.Error().Err(err).Msg("Failed to read persisted session, starting unauthenticated")
		return
	}
	s.Rehydrate(ctx, raw)
}

// Teardown logs out and clears persisted storage.
func (s *Session) Teardown(ctx context.Context) error {
	s.Logout()
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

func decodeUser(raw []byte) (*models.UserRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var user *models.UserRecord
	if err := dec.Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode user record: trailing data")
	}
	if user == nil {
		return nil, errors.New("decode user record: null")
	}
	if err := user.ValidateOnboarded(); err != nil {
		return nil, err
	}
	return user, nil
}
