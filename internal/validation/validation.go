package validation

import (
	"fmt"
	"regexp"
	"strings"

	"velocilector/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateCategoria checks that a category name is one of the known segments
func ValidateCategoria(categoria models.Category) error {
	if categoria == "" {
		return ValidationError{Field: "categoria", Message: "categoria is required"}
	}
	if !categoria.IsValid() {
		return ValidationError{Field: "categoria", Message: fmt.Sprintf("unknown categoria: %s", categoria)}
	}
	return nil
}

// ValidateTema checks that a theme number is positive
func ValidateTema(tema int) error {
	if tema < 1 {
		return ValidationError{Field: "tema", Message: "tema must be at least 1"}
	}
	return nil
}

// ValidateQuestions checks every question of a content draft: option count
// within [2,5] and the correct index inside the options range.
func ValidateQuestions(questions []models.Question) error {
	for i, q := range questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return ValidationError{
				Field:   fmt.Sprintf("questions[%d].question", i),
				Message: "question text is required",
			}
		}
		if len(q.Options) < models.MinOptions || len(q.Options) > models.MaxOptions {
			return ValidationError{
				Field:   fmt.Sprintf("questions[%d].options", i),
				Message: fmt.Sprintf("questions must have between %d and %d options", models.MinOptions, models.MaxOptions),
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return ValidationError{
				Field:   fmt.Sprintf("questions[%d].correct", i),
				Message: fmt.Sprintf("correct index %d out of range [0,%d)", q.CorrectIndex, len(q.Options)),
			}
		}
	}
	return nil
}

// ValidateSessionID checks a client-generated session identifier
func ValidateSessionID(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ValidationError{Field: "sessionId", Message: "sessionId is required"}
	}
	if len(sessionID) > 128 {
		return ValidationError{Field: "sessionId", Message: "sessionId too long"}
	}
	return nil
}
