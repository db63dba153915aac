package models

import "time"

// Session tracks one visiting device. The ID is client-generated; the
// server refreshes LastActivity on heartbeats and marks the session
// inactive after five minutes without one, or on explicit end.
type Session struct {
	SessionID    string    `json:"sessionId"`
	IP           string    `json:"ip"`
	Device       string    `json:"device"`
	Browser      string    `json:"browser"`
	IsPwa        bool      `json:"isPwa"`
	AgeGroup     string    `json:"ageGroup"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
	IsActive     bool      `json:"isActive"`
}
