package repository

import (
	"database/sql"
	"fmt"

	"velocilector/internal/database"
	"velocilector/internal/models"
)

// PrepPageRepository handles reusable prep screen database operations.
// Categories map to pages through prep_page_assignments; assigning a
// category replaces its previous assignment.
type PrepPageRepository struct {
	db *database.DB
}

// NewPrepPageRepository creates a new prep page repository
func NewPrepPageRepository(db *database.DB) *PrepPageRepository {
	return &PrepPageRepository{db: db}
}

// Create inserts a prep page
func (r *PrepPageRepository) Create(page *models.PrepPage) error {
	id, err := r.db.ExecReturningID(`
		INSERT INTO prep_pages (nombre, imagen, titulo, subtitulo, instrucciones, texto_boton)
		VALUES (?, ?, ?, ?, ?, ?)
	`, page.Nombre, page.Imagen, page.Titulo, page.Subtitulo, page.Instrucciones, page.TextoBoton)
	if err != nil {
		return fmt.Errorf("failed to insert prep page: %w", err)
	}
	page.ID = id
	return nil
}

// Update replaces all fields of a prep page
func (r *PrepPageRepository) Update(page *models.PrepPage) error {
	_, err := r.db.Exec(`
		UPDATE prep_pages
		SET nombre = ?, imagen = ?, titulo = ?, subtitulo = ?, instrucciones = ?, texto_boton = ?
		WHERE id = ?
	`, page.Nombre, page.Imagen, page.Titulo, page.Subtitulo, page.Instrucciones, page.TextoBoton, page.ID)
	return err
}

// Delete removes a prep page and its category assignments
func (r *PrepPageRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM prep_page_assignments WHERE prep_page_id = ?", id); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM prep_pages WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete prep page: %w", err)
	}

	return tx.Commit()
}

// List retrieves all prep pages
func (r *PrepPageRepository) List() ([]models.PrepPage, error) {
	rows, err := r.db.Query(`
		SELECT id, nombre, imagen, titulo, subtitulo, instrucciones, texto_boton
		FROM prep_pages
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.PrepPage
	for rows.Next() {
		var p models.PrepPage
		err := rows.Scan(&p.ID, &p.Nombre, &p.Imagen, &p.Titulo, &p.Subtitulo, &p.Instrucciones, &p.TextoBoton)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

// Assign points a category at a prep page, replacing any prior assignment
func (r *PrepPageRepository) Assign(categoria models.Category, pageID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM prep_page_assignments WHERE categoria = ?", categoria); err != nil {
		return fmt.Errorf("failed to clear assignment: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO prep_page_assignments (categoria, prep_page_id) VALUES (?, ?)
	`, categoria, pageID); err != nil {
		return fmt.Errorf("failed to assign prep page: %w", err)
	}

	return tx.Commit()
}

// Unassign removes a category's prep page assignment
func (r *PrepPageRepository) Unassign(categoria models.Category) error {
	_, err := r.db.Exec("DELETE FROM prep_page_assignments WHERE categoria = ?", categoria)
	return err
}

// GetForCategory retrieves the prep page assigned to a category, or nil
// when the category has none.
func (r *PrepPageRepository) GetForCategory(categoria models.Category) (*models.PrepPage, error) {
	page := &models.PrepPage{}
	err := r.db.QueryRow(`
		SELECT p.id, p.nombre, p.imagen, p.titulo, p.subtitulo, p.instrucciones, p.texto_boton
		FROM prep_pages p
		JOIN prep_page_assignments a ON a.prep_page_id = p.id
		WHERE a.categoria = ?
	`, categoria).Scan(
		&page.ID, &page.Nombre, &page.Imagen, &page.Titulo,
		&page.Subtitulo, &page.Instrucciones, &page.TextoBoton,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}
