package repository

import (
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// ResultRepository handles exercise result database operations. Results
// are append-only; no update or delete statements exist here.
type ResultRepository struct {
	db *database.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// InsertQuizResult records a completed lectura/razonamiento/velocidad run
func (r *ResultRepository) InsertQuizResult(result *models.QuizResult) error {
	id, err := r.db.ExecReturningID(`
		INSERT INTO quiz_results
			(session_id, nombre, categoria, tema, tipo_quiz, comprension, ppm,
			 tiempo_lectura, tiempo_cuestionario, categoria_lector, respuestas, is_pwa, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, result.SessionID, result.Nombre, result.Categoria, result.Tema, result.TipoQuiz,
		result.Comprension, result.PPM, result.TiempoLectura, result.TiempoCuestionario,
		result.CategoriaLector, result.Respuestas, result.IsPwa)
	if err != nil {
		return fmt.Errorf("failed to insert quiz result: %w", err)
	}
	result.ID = id
	return nil
}

// InsertTrainingResult records a completed training exercise
func (r *ResultRepository) InsertTrainingResult(result *models.TrainingResult) error {
	id, err := r.db.ExecReturningID(`
		INSERT INTO training_results
			(session_id, nombre, categoria, tipo_ejercicio, puntaje, duracion_ms, respuestas, is_pwa, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, result.SessionID, result.Nombre, result.Categoria, result.TipoEjercicio,
		result.Puntaje, result.DuracionMs, result.Respuestas, result.IsPwa)
	if err != nil {
		return fmt.Errorf("failed to insert training result: %w", err)
	}
	result.ID = id
	return nil
}

// InsertCerebralResult records a completed cerebral exercise
func (r *ResultRepository) InsertCerebralResult(result *models.CerebralResult) error {
	id, err := r.db.ExecReturningID(`
		INSERT INTO cerebral_results
			(session_id, nombre, categoria, tema, exercise_type, respuesta, es_correcta, duracion_ms, is_pwa, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, result.SessionID, result.Nombre, result.Categoria, result.Tema, result.ExerciseType,
		result.Respuesta, result.EsCorrecta, result.DuracionMs, result.IsPwa)
	if err != nil {
		return fmt.Errorf("failed to insert cerebral result: %w", err)
	}
	result.ID = id
	return nil
}

// ResultFilter narrows result listings. Zero values mean "no filter".
type ResultFilter struct {
	SessionID string
	Categoria models.Category
	Limit     int
}

// ListQuizResults retrieves quiz results newest-first
func (r *ResultRepository) ListQuizResults(filter ResultFilter) ([]models.QuizResult, error) {
	query := `
		SELECT id, session_id, nombre, categoria, tema, tipo_quiz, comprension, ppm,
		       tiempo_lectura, tiempo_cuestionario, categoria_lector, respuestas, is_pwa, created_at
		FROM quiz_results
	`
	query, args := applyResultFilter(query, filter)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var res models.QuizResult
		err := rows.Scan(
			&res.ID, &res.SessionID, &res.Nombre, &res.Categoria, &res.Tema,
			&res.TipoQuiz, &res.Comprension, &res.PPM, &res.TiempoLectura,
			&res.TiempoCuestionario, &res.CategoriaLector, &res.Respuestas,
			&res.IsPwa, &res.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// ListTrainingResults retrieves training results newest-first
func (r *ResultRepository) ListTrainingResults(filter ResultFilter) ([]models.TrainingResult, error) {
	query := `
		SELECT id, session_id, nombre, categoria, tipo_ejercicio, puntaje, duracion_ms, respuestas, is_pwa, created_at
		FROM training_results
	`
	query, args := applyResultFilter(query, filter)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.TrainingResult
	for rows.Next() {
		var res models.TrainingResult
		err := rows.Scan(
			&res.ID, &res.SessionID, &res.Nombre, &res.Categoria, &res.TipoEjercicio,
			&res.Puntaje, &res.DuracionMs, &res.Respuestas, &res.IsPwa, &res.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// ListCerebralResults retrieves cerebral results newest-first
func (r *ResultRepository) ListCerebralResults(filter ResultFilter) ([]models.CerebralResult, error) {
	query := `
		SELECT id, session_id, nombre, categoria, tema, exercise_type, respuesta, es_correcta, duracion_ms, is_pwa, created_at
		FROM cerebral_results
	`
	query, args := applyResultFilter(query, filter)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.CerebralResult
	for rows.Next() {
		var res models.CerebralResult
		err := rows.Scan(
			&res.ID, &res.SessionID, &res.Nombre, &res.Categoria, &res.Tema,
			&res.ExerciseType, &res.Respuesta, &res.EsCorrecta, &res.DuracionMs,
			&res.IsPwa, &res.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// applyResultFilter appends WHERE/ORDER BY/LIMIT clauses for a filter
func applyResultFilter(query string, filter ResultFilter) (string, []interface{}) {
	var args []interface{}
	var clauses []string

	if filter.SessionID != "" {
		clauses = append(clauses, "session_id = ?")
		args = append(args, filter.SessionID)
	}
	if filter.Categoria != "" {
		clauses = append(clauses, "categoria = ?")
		args = append(args, filter.Categoria)
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	return query, args
}
