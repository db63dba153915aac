package repository

import (
	"database/sql"
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// AdminRepository handles admin account and reset token database operations
type AdminRepository struct {
	db *database.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts an admin account
func (r *AdminRepository) Create(admin *models.Admin) error {
	id, err := r.db.ExecReturningID(`
		INSERT INTO admins (username, email, password_hash, created_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	`, admin.Username, admin.Email, admin.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	admin.ID = id
	return nil
}

// GetByUsername retrieves an admin by username, or nil when unknown
func (r *AdminRepository) GetByUsername(username string) (*models.Admin, error) {
	return r.getAdmin("username = ?", username)
}

// GetByEmail retrieves an admin by email, or nil when unknown
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	return r.getAdmin("email = ?", email)
}

// GetByID retrieves an admin by ID, or nil when unknown
func (r *AdminRepository) GetByID(id int64) (*models.Admin, error) {
	return r.getAdmin("id = ?", id)
}

func (r *AdminRepository) getAdmin(where string, arg interface{}) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.db.QueryRow(`
		SELECT id, username, email, password_hash, created_at
		FROM admins
		WHERE `+where, arg).Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash, &admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Count returns the number of admin accounts
func (r *AdminRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count)
	return count, err
}

// UpdatePassword replaces an admin's password hash
func (r *AdminRepository) UpdatePassword(adminID int64, passwordHash string) error {
	_, err := r.db.Exec(`
		UPDATE admins SET password_hash = ? WHERE id = ?
	`, passwordHash, adminID)
	return err
}

// CreateResetToken stores a single-use password reset token
func (r *AdminRepository) CreateResetToken(token *models.PasswordResetToken) error {
	_, err := r.db.Exec(`
		INSERT INTO password_reset_tokens (token, admin_id, expires_at, used)
		VALUES (?, ?, ?, FALSE)
	`, token.Token, token.AdminID, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert reset token: %w", err)
	}
	return nil
}

// GetResetToken retrieves a reset token, or nil when unknown
func (r *AdminRepository) GetResetToken(token string) (*models.PasswordResetToken, error) {
	t := &models.PasswordResetToken{}
	err := r.db.QueryRow(`
		SELECT token, admin_id, expires_at, used
		FROM password_reset_tokens
		WHERE token = ?
	`, token).Scan(&t.Token, &t.AdminID, &t.ExpiresAt, &t.Used)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MarkResetTokenUsed consumes a reset token
func (r *AdminRepository) MarkResetTokenUsed(token string) error {
	_, err := r.db.Exec(`
		UPDATE password_reset_tokens SET used = TRUE WHERE token = ?
	`, token)
	return err
}

// DeleteExpiredResetTokens removes tokens past their expiry
func (r *AdminRepository) DeleteExpiredResetTokens() (int64, error) {
	result, err := r.db.Exec(`
		DELETE FROM password_reset_tokens WHERE expires_at < CURRENT_TIMESTAMP
	`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
