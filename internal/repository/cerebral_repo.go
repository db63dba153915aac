package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// CerebralRepository handles cerebral exercise database operations
type CerebralRepository struct {
	db *database.DB
}

// NewCerebralRepository creates a new cerebral repository
func NewCerebralRepository(db *database.DB) *CerebralRepository {
	return &CerebralRepository{db: db}
}

// Upsert saves the full cerebral exercise for (categoria, tema, idioma)
func (r *CerebralRepository) Upsert(exercise *models.CerebralExercise) error {
	dataJSON, err := models.EncodeExerciseData(exercise.Data)
	if err != nil {
		return err
	}
	questionsJSON, err := json.Marshal(exercise.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	var existingID int64
	err = r.db.QueryRow(`
		SELECT id FROM cerebral_exercises
		WHERE categoria = ? AND tema = ? AND idioma = ?
	`, exercise.Categoria, exercise.Tema, exercise.Idioma).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		id, err := r.db.ExecReturningID(`
			INSERT INTO cerebral_exercises (categoria, tema, idioma, title, content, exercise_type, exercise_data, questions, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		`, exercise.Categoria, exercise.Tema, exercise.Idioma, exercise.Title, exercise.Content, exercise.Data.Type, dataJSON, string(questionsJSON))
		if err != nil {
			return fmt.Errorf("failed to insert cerebral exercise: %w", err)
		}
		exercise.ID = id
		return nil
	case err != nil:
		return fmt.Errorf("failed to look up cerebral exercise: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE cerebral_exercises
		SET title = ?, content = ?, exercise_type = ?, exercise_data = ?, questions = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, exercise.Title, exercise.Content, exercise.Data.Type, dataJSON, string(questionsJSON), existingID)
	if err != nil {
		return fmt.Errorf("failed to update cerebral exercise: %w", err)
	}
	exercise.ID = existingID
	return nil
}

// Get retrieves the cerebral exercise for an exact (categoria, tema, idioma)
// combination, or nil when none is saved.
func (r *CerebralRepository) Get(categoria models.Category, tema int, idioma string) (*models.CerebralExercise, error) {
	exercise := &models.CerebralExercise{}
	var dataJSON, questionsJSON string
	var exerciseType string

	err := r.db.QueryRow(`
		SELECT id, categoria, tema, idioma, title, content, exercise_type, exercise_data, questions, updated_at
		FROM cerebral_exercises
		WHERE categoria = ? AND tema = ? AND idioma = ?
	`, categoria, tema, idioma).Scan(
		&exercise.ID,
		&exercise.Categoria,
		&exercise.Tema,
		&exercise.Idioma,
		&exercise.Title,
		&exercise.Content,
		&exerciseType,
		&dataJSON,
		&questionsJSON,
		&exercise.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	exercise.Data, err = models.DecodeExerciseData(dataJSON)
	if err != nil {
		return nil, err
	}
	if questionsJSON != "" {
		if err := json.Unmarshal([]byte(questionsJSON), &exercise.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode questions: %w", err)
		}
	}

	return exercise, nil
}

// ListSavedThemes lists the saved cerebral themes for a category and language
func (r *CerebralRepository) ListSavedThemes(categoria models.Category, idioma string) ([]models.Theme, error) {
	rows, err := r.db.Query(`
		SELECT tema, title
		FROM cerebral_exercises
		WHERE categoria = ? AND idioma = ?
		ORDER BY tema ASC
	`, categoria, idioma)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []models.Theme
	for rows.Next() {
		var theme models.Theme
		if err := rows.Scan(&theme.Tema, &theme.Title); err != nil {
			return nil, err
		}
		theme.Saved = true
		themes = append(themes, theme)
	}

	return themes, rows.Err()
}
