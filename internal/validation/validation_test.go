package validation

import (
	"testing"

	"velocilector/internal/models"
)

func TestValidateCategoria(t *testing.T) {
	tests := []struct {
		name      string
		categoria models.Category
		wantErr   bool
	}{
		{name: "valid", categoria: models.CategoryNinos, wantErr: false},
		{name: "valid adulto mayor", categoria: models.CategoryAdultoMayor, wantErr: false},
		{name: "empty", categoria: "", wantErr: true},
		{name: "unknown", categoria: "bebes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoria(tt.categoria)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategoria(%q) error = %v, wantErr %v", tt.categoria, err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuestions(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.Question
		wantErr   bool
	}{
		{
			name: "valid",
			questions: []models.Question{
				{Prompt: "¿Qué?", Options: []string{"a", "b"}, CorrectIndex: 1},
			},
			wantErr: false,
		},
		{
			name: "correct index out of range",
			questions: []models.Question{
				{Prompt: "¿Qué?", Options: []string{"a", "b"}, CorrectIndex: 2},
			},
			wantErr: true,
		},
		{
			name: "negative correct index",
			questions: []models.Question{
				{Prompt: "¿Qué?", Options: []string{"a", "b"}, CorrectIndex: -1},
			},
			wantErr: true,
		},
		{
			name: "too few options",
			questions: []models.Question{
				{Prompt: "¿Qué?", Options: []string{"a"}, CorrectIndex: 0},
			},
			wantErr: true,
		},
		{
			name: "too many options",
			questions: []models.Question{
				{Prompt: "¿Qué?", Options: []string{"a", "b", "c", "d", "e", "f"}, CorrectIndex: 0},
			},
			wantErr: true,
		},
		{
			name: "blank prompt",
			questions: []models.Question{
				{Prompt: "  ", Options: []string{"a", "b"}, CorrectIndex: 0},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestions(tt.questions)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuestions() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("admin@example.com"); err != nil {
		t.Errorf("ValidateEmail() error = %v for valid address", err)
	}
	if err := ValidateEmail("not-an-email"); err == nil {
		t.Error("ValidateEmail() accepted an invalid address")
	}
}
