package service

import (
	"fmt"

	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/validation"
)

// Reader category labels. The Spanish strings are part of the stored data
// and of the results export, so they must not change.
const (
	ReaderSevere     = "LECTOR CON DIFICULTAD SEVERA"
	ReaderDifficulty = "LECTOR CON DIFICULTAD"
	ReaderCompetent  = "LECTOR COMPETENTE"
	ReaderRegular    = "LECTOR REGULAR"
)

// ResultService records completed exercises and derives the reader
// category label for quiz runs.
type ResultService struct {
	resultRepo *repository.ResultRepository
}

// NewResultService creates a new result service
func NewResultService(resultRepo *repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// ClassifyReader maps a quiz run to a reader category. The cascade is
// evaluated strictly in order: severe, difficulty, competent, regular,
// falling back to the difficulty label when nothing matches. Times are
// in seconds.
func ClassifyReader(comprension, ppm, tiempoLectura, tiempoCuestionario int) string {
	// Severe: comprehension below half, or very slow reading that also
	// failed to reach solid comprehension.
	if comprension < 50 {
		return ReaderSevere
	}
	if ppm > 0 && ppm < 60 && comprension < 70 {
		return ReaderSevere
	}

	// Difficulty: weak comprehension, slow reading, or answering took far
	// longer than the reading itself.
	if comprension < 70 || ppm < 100 {
		return ReaderDifficulty
	}
	if tiempoLectura > 0 && tiempoCuestionario > 3*tiempoLectura {
		return ReaderDifficulty
	}

	// Competent: strong comprehension at a healthy pace.
	if comprension >= 80 && ppm >= 150 {
		return ReaderCompetent
	}

	// Regular: acceptable comprehension and pace.
	if comprension >= 70 && ppm >= 100 {
		return ReaderRegular
	}

	return ReaderDifficulty
}

// SaveQuizResult derives the reader category and records the run.
// The stored category always comes from the cascade; any value sent by
// the client is ignored.
func (s *ResultService) SaveQuizResult(result *models.QuizResult) error {
	if err := validation.ValidateCategoria(result.Categoria); err != nil {
		return err
	}
	if result.Comprension < 0 || result.Comprension > 100 {
		return validation.ValidationError{Field: "comprension", Message: "must be between 0 and 100"}
	}

	result.CategoriaLector = ClassifyReader(result.Comprension, result.PPM, result.TiempoLectura, result.TiempoCuestionario)

	if err := s.resultRepo.InsertQuizResult(result); err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}
	return nil
}

// SaveTrainingResult records a completed training exercise
func (s *ResultService) SaveTrainingResult(result *models.TrainingResult) error {
	if err := validation.ValidateCategoria(result.Categoria); err != nil {
		return err
	}
	if err := s.resultRepo.InsertTrainingResult(result); err != nil {
		return fmt.Errorf("failed to save training result: %w", err)
	}
	return nil
}

// SaveCerebralResult records a completed cerebral exercise
func (s *ResultService) SaveCerebralResult(result *models.CerebralResult) error {
	if err := validation.ValidateCategoria(result.Categoria); err != nil {
		return err
	}
	if !result.ExerciseType.IsValid() {
		return validation.ValidationError{Field: "exerciseType", Message: "unknown exercise type"}
	}
	if err := s.resultRepo.InsertCerebralResult(result); err != nil {
		return fmt.Errorf("failed to save cerebral result: %w", err)
	}
	return nil
}

// ListQuizResults lists quiz results, optionally filtered
func (s *ResultService) ListQuizResults(filter repository.ResultFilter) ([]models.QuizResult, error) {
	return s.resultRepo.ListQuizResults(filter)
}

// ListTrainingResults lists training results, optionally filtered
func (s *ResultService) ListTrainingResults(filter repository.ResultFilter) ([]models.TrainingResult, error) {
	return s.resultRepo.ListTrainingResults(filter)
}

// ListCerebralResults lists cerebral results, optionally filtered
func (s *ResultService) ListCerebralResults(filter repository.ResultFilter) ([]models.CerebralResult, error) {
	return s.resultRepo.ListCerebralResults(filter)
}
