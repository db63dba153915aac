package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"velocilector/internal/security"
	"velocilector/internal/service"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthHandler implements Google SSO as an alternative admin login.
// Only allow-listed emails are issued a bearer token.
type OAuthHandler struct {
	authService *service.AuthService
	config      *oauth2.Config
}

// NewOAuthHandler creates a new oauth handler; config may be nil when
// SSO is not configured.
func NewOAuthHandler(authService *service.AuthService, config *oauth2.Config) *OAuthHandler {
	return &OAuthHandler{authService: authService, config: config}
}

// Start initiates the Google SSO flow
func (h *OAuthHandler) Start(w http.ResponseWriter, r *http.Request) {
	if h.config == nil || h.config.ClientID == "" {
		respondWithError(w, http.StatusBadRequest, "Google SSO is not configured")
		return
	}

	state := security.NewTokenID()
	h.setTempCookie(w, r, "oauth_state", state, 10*time.Minute)

	url := h.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// Callback exchanges the code, verifies the email and issues a token
func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if h.config == nil || h.config.ClientID == "" {
		respondWithError(w, http.StatusBadRequest, "Google SSO is not configured")
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		respondWithError(w, http.StatusBadRequest, "invalid oauth state")
		return
	}
	h.clearTempCookie(w, r, "oauth_state")

	code := r.URL.Query().Get("code")
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "missing authorization code")
		return
	}

	oauthToken, err := h.config.Exchange(r.Context(), code)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "code exchange failed")
		return
	}

	email, err := h.fetchGoogleEmail(r.Context(), oauthToken)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.authService.LoginWithEmail(email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// fetchGoogleEmail reads the verified email from the userinfo endpoint
func (h *OAuthHandler) fetchGoogleEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("user info request returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read user info: %w", err)
	}

	var info struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("failed to decode user info: %w", err)
	}
	if info.Email == "" || !info.VerifiedEmail {
		return "", fmt.Errorf("google account has no verified email")
	}
	return info.Email, nil
}

func (h *OAuthHandler) setTempCookie(w http.ResponseWriter, r *http.Request, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *OAuthHandler) clearTempCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
