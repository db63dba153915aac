package repository

import (
	"database/sql"
	"fmt"
	"time"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// SessionRepository handles visitor session database operations
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Upsert registers a session, or reactivates it and refreshes its metadata
// when the client-generated ID is already known.
func (r *SessionRepository) Upsert(session *models.Session) error {
	var exists int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM sessions WHERE session_id = ?
	`, session.SessionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up session: %w", err)
	}

	if exists == 0 {
		_, err = r.db.Exec(`
			INSERT INTO sessions (session_id, ip, device, browser, is_pwa, age_group, created_at, last_activity, is_active)
			VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, TRUE)
		`, session.SessionID, session.IP, session.Device, session.Browser, session.IsPwa, session.AgeGroup)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		return nil
	}

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ip = ?, device = ?, browser = ?, is_pwa = ?, age_group = ?,
		    last_activity = CURRENT_TIMESTAMP, is_active = TRUE
		WHERE session_id = ?
	`, session.IP, session.Device, session.Browser, session.IsPwa, session.AgeGroup, session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// Heartbeat refreshes a session's last activity and keeps it active
func (r *SessionRepository) Heartbeat(sessionID string) error {
	_, err := r.db.Exec(`
		UPDATE sessions
		SET last_activity = CURRENT_TIMESTAMP, is_active = TRUE
		WHERE session_id = ?
	`, sessionID)
	return err
}

// End marks a session inactive immediately
func (r *SessionRepository) End(sessionID string) error {
	_, err := r.db.Exec(`
		UPDATE sessions SET is_active = FALSE WHERE session_id = ?
	`, sessionID)
	return err
}

// MarkInactiveBefore deactivates sessions with no activity since the cutoff.
// Returns how many sessions were deactivated.
func (r *SessionRepository) MarkInactiveBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`
		UPDATE sessions
		SET is_active = FALSE
		WHERE is_active = TRUE AND last_activity < ?
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Get retrieves one session, or nil when unknown
func (r *SessionRepository) Get(sessionID string) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRow(`
		SELECT session_id, ip, device, browser, is_pwa, age_group, created_at, last_activity, is_active
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(
		&session.SessionID, &session.IP, &session.Device, &session.Browser,
		&session.IsPwa, &session.AgeGroup, &session.CreatedAt,
		&session.LastActivity, &session.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// List retrieves sessions newest-first, optionally only active ones
func (r *SessionRepository) List(activeOnly bool) ([]models.Session, error) {
	query := `
		SELECT session_id, ip, device, browser, is_pwa, age_group, created_at, last_activity, is_active
		FROM sessions
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY last_activity DESC"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		err := rows.Scan(
			&s.SessionID, &s.IP, &s.Device, &s.Browser, &s.IsPwa,
			&s.AgeGroup, &s.CreatedAt, &s.LastActivity, &s.IsActive,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
