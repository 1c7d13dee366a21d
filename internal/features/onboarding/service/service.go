package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"networth-tracker/internal/features/onboarding/models"
	sessionmodels "networth-tracker/internal/features/session/models"
)

// SessionStore is the part of the session the onboarding flow hands its result to.
type SessionStore interface {
	SetUser(user *sessionmodels.UserRecord)
	Persist(ctx context.Context) error
	IsOnboarded() bool
}

type OnboardingService interface {
	Status() models.Status
	SubmitEmail(ctx context.Context, creds models.EmailCredentials) (models.Status, error)
	SubmitFederated(ctx context.Context) (models.Status, error)
	EditProfile(ctx context.Context, patch models.ProfilePatch) (models.Status, error)
	CompleteProfile(ctx context.Context, patch models.ProfilePatch) (*sessionmodels.UserRecord, error)
	Restart()
}

// onboardingService owns the current attempt of this single-user process.
type onboardingService struct {
	mu      sync.Mutex
	attempt *Workflow

	session SessionStore
	now     func() time.Time
	log     zerolog.Logger
}

func NewOnboardingService(session SessionStore, now func() time.Time, log zerolog.Logger) OnboardingService {
	if now == nil {
		now = time.Now
	}
	return &onboardingService{
		attempt: NewWorkflow(now),
		session: session,
		now:     now,
		log:     log.With().Str("component", "onboarding").Logger(),
	}
}

func (s *onboardingService) Status() models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt.Status()
}

func (s *onboardingService) SubmitEmail(ctx context.Context, creds models.EmailCredentials) (models.Status, error) {
	return s.submitCredentials(EmailProvider{Credentials: creds}, "email")
}

func (s *onboardingService) SubmitFederated(ctx context.Context) (models.Status, error) {
	return s.submitCredentials(FederatedProvider{}, "federated")
}

func (s *onboardingService) submitCredentials(p CredentialProvider, method string) (models.Status, error) {
	if s.session.IsOnboarded() {
		return models.Status{}, models.ErrAlreadyOnboarded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.attempt.SubmitCredentials(p)
	if err != nil {
		s.log.Debug().Err(err).Str("method", method).Msg("Credential step rejected")
		return s.attempt.Status(), err
	}

	s.log.Info().Str("method", method).Str("user_id", id.ID).Msg("Credentials captured")
	return s.attempt.Status(), nil
}

func (s *onboardingService) EditProfile(ctx context.Context, patch models.ProfilePatch) (models.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.attempt.Apply(patch); err != nil {
		return s.attempt.Status(), err
	}
	return s.attempt.Status(), nil
}

// CompleteProfile applies patch, submits the profile and, on success, hands
// the record to the session, persists it and starts a fresh attempt.
func (s *onboardingService) CompleteProfile(ctx context.Context, patch models.ProfilePatch) (*sessionmodels.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.attempt.Apply(patch); err != nil {
		return nil, err
	}

	user, err := s.attempt.SubmitProfile()
	if err != nil {
		return nil, err
	}

	s.session.SetUser(user)
	if err := s.session.Persist(ctx); err != nil {
		// The in-memory session stays authoritative; it just won't survive a restart.
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to persist session")
	}

	s.log.Info().Str("user_id", user.ID).Str("currency", user.Currency).Msg("Onboarding complete")
	s.attempt = NewWorkflow(s.now)
	return user, nil
}

// Restart discards the current attempt.
func (s *onboardingService) Restart() {
	s.mu.Lock()
	s.attempt = NewWorkflow(s.now)
	s.mu.Unlock()
}
