package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/security"
	"velocilector/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailNotAllowed    = errors.New("email not on the admin allow list")
	ErrResetTokenInvalid  = errors.New("reset token is invalid, used or expired")
)

const resetTokenTTL = time.Hour

// AuthService issues and validates admin bearer tokens. Tokens are signed
// JWTs whose jti is also registered server-side, so logout revokes a token
// before its expiry.
type AuthService struct {
	adminRepo      *repository.AdminRepository
	emailService   *EmailService
	tokens         *security.TokenStore
	tokenSecret    []byte
	tokenTTL       time.Duration
	emailAllowlist []string
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo *repository.AdminRepository, emailService *EmailService, tokens *security.TokenStore, tokenSecret string, tokenTTL time.Duration, emailAllowlist []string) *AuthService {
	return &AuthService{
		adminRepo:      adminRepo,
		emailService:   emailService,
		tokens:         tokens,
		tokenSecret:    []byte(tokenSecret),
		tokenTTL:       tokenTTL,
		emailAllowlist: emailAllowlist,
	}
}

// Bootstrap creates the initial admin account when none exists yet.
// A blank bootstrap password leaves the table empty.
func (s *AuthService) Bootstrap(username, password, email string) error {
	count, err := s.adminRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 || password == "" {
		return nil
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := &models.Admin{Username: username, Email: email, PasswordHash: hash}
	if err := s.adminRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	log.Printf("Bootstrap admin account created: %s", username)
	return nil
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil || !security.CheckPassword(password, admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(admin)
}

// LoginWithEmail issues a bearer token for an SSO-verified email address.
// The email must be on the allow list; an account is created on first
// login so password resets have somewhere to land.
func (s *AuthService) LoginWithEmail(email string) (string, error) {
	if !s.emailAllowed(email) {
		return "", ErrEmailNotAllowed
	}

	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		// SSO-only account: an unguessable hash blocks password logins
		hash, err := security.HashPassword(security.NewTokenID())
		if err != nil {
			return "", fmt.Errorf("failed to hash placeholder password: %w", err)
		}
		admin = &models.Admin{Username: email, Email: email, PasswordHash: hash}
		if err := s.adminRepo.Create(admin); err != nil {
			return "", fmt.Errorf("failed to create SSO admin: %w", err)
		}
		log.Printf("Admin account created from SSO login: %s", email)
	}

	return s.issueToken(admin)
}

// Logout revokes a token immediately
func (s *AuthService) Logout(tokenString string) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return
	}
	s.tokens.Revoke(claims.ID)
}

// ValidateToken checks signature, expiry and server-side registration,
// returning the admin ID the token was issued for.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if !s.tokens.Valid(claims.ID) {
		return 0, ErrInvalidToken
	}

	var adminID int64
	if _, err := fmt.Sscanf(claims.Subject, "%d", &adminID); err != nil {
		return 0, ErrInvalidToken
	}
	return adminID, nil
}

// RequestPasswordReset creates a single-use token and mails the link.
// Unknown emails are silently accepted so the endpoint does not reveal
// which addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		log.Printf("Password reset requested for unknown email")
		return nil
	}

	token := &models.PasswordResetToken{
		Token:     security.NewTokenID(),
		AdminID:   admin.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.adminRepo.CreateResetToken(token); err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	return s.emailService.SendPasswordResetEmail(ctx, admin.Email, admin.Username, token.Token)
}

// ResetPassword consumes a reset token and replaces the password
func (s *AuthService) ResetPassword(tokenString, newPassword string) error {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	token, err := s.adminRepo.GetResetToken(tokenString)
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if token == nil || token.Used || token.IsExpired() {
		return ErrResetTokenInvalid
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.adminRepo.UpdatePassword(token.AdminID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.adminRepo.MarkResetTokenUsed(token.Token); err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	return nil
}

// SweepExpired drops revocable-token state and expired reset tokens
func (s *AuthService) SweepExpired() {
	if n := s.tokens.Sweep(); n > 0 {
		log.Printf("Swept %d expired admin tokens", n)
	}
	if n, err := s.adminRepo.DeleteExpiredResetTokens(); err != nil {
		log.Printf("Failed to sweep reset tokens: %v", err)
	} else if n > 0 {
		log.Printf("Swept %d expired reset tokens", n)
	}
}

func (s *AuthService) issueToken(admin *models.Admin) (string, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	jti := security.NewTokenID()

	claims := jwt.RegisteredClaims{
		ID:        jti,
		Subject:   fmt.Sprintf("%d", admin.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.tokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.tokens.Put(jti, expiresAt)
	return signed, nil
}

func (s *AuthService) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.tokenSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) emailAllowed(email string) bool {
	for _, allowed := range s.emailAllowlist {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}
