package service

import (
	"fmt"
	"strings"

	"velocilector/internal/content"
	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/validation"
)

// VelocidadService serves per-category flashing-word exercises, falling
// back to the built-in definition when none is saved.
type VelocidadService struct {
	velocidadRepo *repository.VelocidadRepository
}

// NewVelocidadService creates a new velocidad service
func NewVelocidadService(velocidadRepo *repository.VelocidadRepository) *VelocidadService {
	return &VelocidadService{velocidadRepo: velocidadRepo}
}

// Get returns a category's exercise with every level's options guaranteed
// to contain the correct answer.
func (s *VelocidadService) Get(categoria models.Category) (*models.VelocidadEjercicio, error) {
	if err := validation.ValidateCategoria(categoria); err != nil {
		return nil, err
	}

	exercise, err := s.velocidadRepo.Get(categoria)
	if err != nil {
		return nil, fmt.Errorf("failed to load velocidad exercise: %w", err)
	}
	if exercise == nil {
		exercise = content.DefaultVelocidad(categoria)
	}
	if exercise == nil {
		return nil, nil
	}

	for i := range exercise.Niveles {
		ensureCorrectOption(&exercise.Niveles[i])
	}
	return exercise, nil
}

// Save validates and persists a category's exercise definition
func (s *VelocidadService) Save(exercise *models.VelocidadEjercicio) error {
	if err := validation.ValidateCategoria(exercise.Categoria); err != nil {
		return err
	}
	if len(exercise.Niveles) == 0 {
		return validation.ValidationError{Field: "niveles", Message: "at least one level is required"}
	}
	for _, nivel := range exercise.Niveles {
		if len(nivel.Palabras) == 0 {
			return validation.ValidationError{Field: "palabras", Message: "each level needs at least one word"}
		}
		if nivel.Velocidad <= 0 {
			return validation.ValidationError{Field: "velocidad", Message: "speed must be positive"}
		}
	}

	if err := s.velocidadRepo.Upsert(exercise); err != nil {
		return fmt.Errorf("failed to save velocidad exercise: %w", err)
	}
	return nil
}

// ensureCorrectOption synthesises the question's correct answer into the
// level's options when the saved options omit it. The correct answer for
// a count question is the word count; otherwise it is the first word.
func ensureCorrectOption(nivel *models.VelocidadNivel) {
	answer := correctAnswer(nivel)
	if answer == "" {
		return
	}
	for _, opt := range nivel.Opciones {
		if strings.EqualFold(opt, answer) {
			return
		}
	}
	nivel.Opciones = append(nivel.Opciones, answer)
}

func correctAnswer(nivel *models.VelocidadNivel) string {
	if len(nivel.Palabras) == 0 {
		return ""
	}
	if nivel.TipoPregunta == "conteo" {
		return fmt.Sprintf("%d", len(nivel.Palabras))
	}
	return nivel.Palabras[0]
}
