package repository

import (
	"database/sql"
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// EntrenamientoRepository handles training section database operations
type EntrenamientoRepository struct {
	db *database.DB
}

// NewEntrenamientoRepository creates a new entrenamiento repository
func NewEntrenamientoRepository(db *database.DB) *EntrenamientoRepository {
	return &EntrenamientoRepository{db: db}
}

// Create inserts a training section at the end of its category's list
func (r *EntrenamientoRepository) Create(item *models.EntrenamientoItem) error {
	var maxOrder sql.NullInt64
	err := r.db.QueryRow(`
		SELECT MAX(sort_order) FROM entrenamiento_items WHERE categoria = ?
	`, item.Categoria).Scan(&maxOrder)
	if err != nil {
		return fmt.Errorf("failed to determine sort order: %w", err)
	}
	item.SortOrder = int(maxOrder.Int64) + 1

	id, err := r.db.ExecReturningID(`
		INSERT INTO entrenamiento_items
			(categoria, title, description, image_url, link_url, tipo_ejercicio,
			 prep_titulo, prep_subtitulo, prep_instrucciones, prep_texto_boton,
			 sort_order, is_active, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, item.Categoria, item.Title, item.Description, item.ImageURL, item.LinkURL,
		item.TipoEjercicio, item.PrepTitulo, item.PrepSubtitulo, item.PrepInstrucciones,
		item.PrepTextoBoton, item.SortOrder, item.IsActive)
	if err != nil {
		return fmt.Errorf("failed to insert entrenamiento item: %w", err)
	}
	item.ID = id
	return nil
}

// Update replaces all editable fields of a training section
func (r *EntrenamientoRepository) Update(item *models.EntrenamientoItem) error {
	_, err := r.db.Exec(`
		UPDATE entrenamiento_items
		SET title = ?, description = ?, image_url = ?, link_url = ?, tipo_ejercicio = ?,
		    prep_titulo = ?, prep_subtitulo = ?, prep_instrucciones = ?, prep_texto_boton = ?,
		    is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, item.Title, item.Description, item.ImageURL, item.LinkURL, item.TipoEjercicio,
		item.PrepTitulo, item.PrepSubtitulo, item.PrepInstrucciones, item.PrepTextoBoton,
		item.IsActive, item.ID)
	return err
}

// Delete removes a training section
func (r *EntrenamientoRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM entrenamiento_items WHERE id = ?", id)
	return err
}

// Reorder assigns sort positions following the given ID order
func (r *EntrenamientoRepository) Reorder(categoria models.Category, orderedIDs []int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for position, id := range orderedIDs {
		_, err := tx.Exec(`
			UPDATE entrenamiento_items SET sort_order = ? WHERE id = ? AND categoria = ?
		`, position, id, categoria)
		if err != nil {
			return fmt.Errorf("failed to reorder item %d: %w", id, err)
		}
	}

	return tx.Commit()
}

// ListByCategory retrieves a category's sections ordered by sort position.
// When activeOnly is true only active sections are returned (public pages).
func (r *EntrenamientoRepository) ListByCategory(categoria models.Category, activeOnly bool) ([]models.EntrenamientoItem, error) {
	query := `
		SELECT id, categoria, title, description, image_url, link_url, tipo_ejercicio,
		       prep_titulo, prep_subtitulo, prep_instrucciones, prep_texto_boton,
		       sort_order, is_active, updated_at
		FROM entrenamiento_items
		WHERE categoria = ?
	`
	if activeOnly {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC"

	rows, err := r.db.Query(query, categoria)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.EntrenamientoItem
	for rows.Next() {
		var item models.EntrenamientoItem
		err := rows.Scan(
			&item.ID, &item.Categoria, &item.Title, &item.Description,
			&item.ImageURL, &item.LinkURL, &item.TipoEjercicio,
			&item.PrepTitulo, &item.PrepSubtitulo, &item.PrepInstrucciones,
			&item.PrepTextoBoton, &item.SortOrder, &item.IsActive, &item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
