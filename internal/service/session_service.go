package service

import (
	"fmt"
	"time"

	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/validation"
)

// SessionService tracks visiting devices. Sessions are created by the
// client with its own ID, kept alive by heartbeats, and swept inactive
// by a background ticker after a period without activity.
type SessionService struct {
	sessionRepo   *repository.SessionRepository
	inactiveAfter time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo *repository.SessionRepository, inactiveAfter time.Duration) *SessionService {
	return &SessionService{
		sessionRepo:   sessionRepo,
		inactiveAfter: inactiveAfter,
	}
}

// Register creates or reactivates a session
func (s *SessionService) Register(session *models.Session) error {
	if err := validation.ValidateSessionID(session.SessionID); err != nil {
		return err
	}
	if err := s.sessionRepo.Upsert(session); err != nil {
		return fmt.Errorf("failed to register session: %w", err)
	}
	return nil
}

// Heartbeat refreshes a session's last activity
func (s *SessionService) Heartbeat(sessionID string) error {
	if err := validation.ValidateSessionID(sessionID); err != nil {
		return err
	}
	return s.sessionRepo.Heartbeat(sessionID)
}

// End marks a session inactive immediately
func (s *SessionService) End(sessionID string) error {
	if err := validation.ValidateSessionID(sessionID); err != nil {
		return err
	}
	return s.sessionRepo.End(sessionID)
}

// SweepInactive deactivates sessions idle past the configured window.
// Returns how many sessions were deactivated.
func (s *SessionService) SweepInactive() (int64, error) {
	cutoff := time.Now().Add(-s.inactiveAfter)
	return s.sessionRepo.MarkInactiveBefore(cutoff)
}

// List retrieves sessions, optionally only active ones
func (s *SessionService) List(activeOnly bool) ([]models.Session, error) {
	return s.sessionRepo.List(activeOnly)
}
