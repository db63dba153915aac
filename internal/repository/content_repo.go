package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// ContentRepository handles reading/razonamiento content database operations
type ContentRepository struct {
	db *database.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *database.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Upsert saves the full content record for (tipo, categoria, tema, idioma),
// replacing any previous questions. Saves persist the whole draft; the last
// write wins on concurrent saves.
func (r *ContentRepository) Upsert(record *models.ContentRecord) error {
	imagesJSON, err := json.Marshal(record.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var contentID int64
	err = tx.QueryRow(`
		SELECT id FROM contents
		WHERE tipo = ? AND categoria = ? AND tema = ? AND idioma = ?
	`, record.Type, record.Categoria, record.Tema, record.Idioma).Scan(&contentID)

	switch {
	case err == sql.ErrNoRows:
		contentID, err = tx.ExecReturningID(`
			INSERT INTO contents (tipo, categoria, tema, idioma, title, content, images, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		`, record.Type, record.Categoria, record.Tema, record.Idioma, record.Title, record.Content, string(imagesJSON))
		if err != nil {
			return fmt.Errorf("failed to insert content: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up content: %w", err)
	default:
		_, err = tx.Exec(`
			UPDATE contents
			SET title = ?, content = ?, images = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, record.Title, record.Content, string(imagesJSON), contentID)
		if err != nil {
			return fmt.Errorf("failed to update content: %w", err)
		}
	}

	if _, err := tx.Exec("DELETE FROM content_questions WHERE content_id = ?", contentID); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}

	for i, q := range record.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to encode options: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO content_questions (content_id, posicion, prompt, image_url, options, correct_index)
			VALUES (?, ?, ?, ?, ?, ?)
		`, contentID, i, q.Prompt, q.ImageURL, string(optionsJSON), q.CorrectIndex)
		if err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
	}

	record.ID = contentID
	return tx.Commit()
}

// Get retrieves the content record for an exact (tipo, categoria, tema, idioma)
// combination, or nil when none is saved.
func (r *ContentRepository) Get(ct models.ContentType, categoria models.Category, tema int, idioma string) (*models.ContentRecord, error) {
	record := &models.ContentRecord{Type: ct}
	var imagesJSON string

	err := r.db.QueryRow(`
		SELECT id, categoria, tema, idioma, title, content, images, updated_at
		FROM contents
		WHERE tipo = ? AND categoria = ? AND tema = ? AND idioma = ?
	`, ct, categoria, tema, idioma).Scan(
		&record.ID,
		&record.Categoria,
		&record.Tema,
		&record.Idioma,
		&record.Title,
		&record.Content,
		&imagesJSON,
		&record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if imagesJSON != "" {
		if err := json.Unmarshal([]byte(imagesJSON), &record.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
	}

	questions, err := r.getQuestions(record.ID)
	if err != nil {
		return nil, err
	}
	record.Questions = questions

	return record, nil
}

// getQuestions retrieves a record's questions in saved order
func (r *ContentRepository) getQuestions(contentID int64) ([]models.Question, error) {
	rows, err := r.db.Query(`
		SELECT id, prompt, image_url, options, correct_index
		FROM content_questions
		WHERE content_id = ?
		ORDER BY posicion ASC
	`, contentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		var optionsJSON string
		if err := rows.Scan(&q.ID, &q.Prompt, &q.ImageURL, &optionsJSON, &q.CorrectIndex); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options: %w", err)
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// ListSavedThemes lists the saved themes for one content family, category
// and language, ascending by theme number.
func (r *ContentRepository) ListSavedThemes(ct models.ContentType, categoria models.Category, idioma string) ([]models.Theme, error) {
	rows, err := r.db.Query(`
		SELECT tema, title
		FROM contents
		WHERE tipo = ? AND categoria = ? AND idioma = ?
		ORDER BY tema ASC
	`, ct, categoria, idioma)
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
