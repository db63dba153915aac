package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// VelocidadRepository handles flashing-word exercise database operations
type VelocidadRepository struct {
	db *database.DB
}

// NewVelocidadRepository creates a new velocidad repository
func NewVelocidadRepository(db *database.DB) *VelocidadRepository {
	return &VelocidadRepository{db: db}
}

// Upsert saves the full exercise definition for a category
func (r *VelocidadRepository) Upsert(exercise *models.VelocidadEjercicio) error {
	nivelesJSON, err := json.Marshal(exercise.Niveles)
	if err != nil {
		return fmt.Errorf("failed to encode niveles: %w", err)
	}

	var existingID int64
	err = r.db.QueryRow(`
		SELECT id FROM velocidad_ejercicios WHERE categoria = ?
	`, exercise.Categoria).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		id, err := r.db.ExecReturningID(`
			INSERT INTO velocidad_ejercicios (categoria, niveles, tiempo_animacion_inicial, velocidad_animacion)
			VALUES (?, ?, ?, ?)
		`, exercise.Categoria, string(nivelesJSON), exercise.TiempoAnimacionInicial, exercise.VelocidadAnimacion)
		if err != nil {
			return fmt.Errorf("failed to insert velocidad exercise: %w", err)
		}
		exercise.ID = id
		return nil
	case err != nil:
		return fmt.Errorf("failed to look up velocidad exercise: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE velocidad_ejercicios
		SET niveles = ?, tiempo_animacion_inicial = ?, velocidad_animacion = ?
		WHERE id = ?
	`, string(nivelesJSON), exercise.TiempoAnimacionInicial, exercise.VelocidadAnimacion, existingID)
	if err != nil {
		return fmt.Errorf("failed to update velocidad exercise: %w", err)
	}
	exercise.ID = existingID
	return nil
}

// Get retrieves a category's exercise definition, or nil when none is saved
func (r *VelocidadRepository) Get(categoria models.Category) (*models.VelocidadEjercicio, error) {
	exercise := &models.VelocidadEjercicio{}
	var nivelesJSON string

	err := r.db.QueryRow(`
		SELECT id, categoria, niveles, tiempo_animacion_inicial, velocidad_animacion
		FROM velocidad_ejercicios
		WHERE categoria = ?
	`, categoria).Scan(
		&exercise.ID,
		&exercise.Categoria,
		&nivelesJSON,
		&exercise.TiempoAnimacionInicial,
		&exercise.VelocidadAnimacion,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(nivelesJSON), &exercise.Niveles); err != nil {
		return nil, fmt.Errorf("failed to decode niveles: %w", err)
	}

	return exercise, nil
}
