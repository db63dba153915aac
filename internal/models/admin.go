package models

import "time"

// Admin is a panel operator account. Password logins use the bcrypt hash;
// Google SSO logins match on an allow-listed email instead.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PasswordResetToken is a single-use token mailed to an admin.
type PasswordResetToken struct {
	Token     string
	AdminID   int64
	ExpiresAt time.Time
	Used      bool
}

// IsExpired reports whether the token is past its expiry.
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
