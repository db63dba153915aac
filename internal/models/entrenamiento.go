package models

import "time"

// EntrenamientoItem is a named training section shown on a category's
// training page. Items are admin-mutable and ordered by SortOrder.
type EntrenamientoItem struct {
	ID            int64    `json:"id,omitempty"`
	Categoria     Category `json:"categoria"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	LinkURL       string   `json:"linkUrl"`
	TipoEjercicio string   `json:"tipoEjercicio"`

	// Optional inline prep screen shown before the exercise starts
	PrepTitulo        string `json:"prepTitulo,omitempty"`
	PrepSubtitulo     string `json:"prepSubtitulo,omitempty"`
	PrepInstrucciones string `json:"prepInstrucciones,omitempty"`
	PrepTextoBoton    string `json:"prepTextoBoton,omitempty"`

	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// PrepPage is a reusable "before you start" screen, mapped to categories
// through a separate assignment table (many categories to one page).
type PrepPage struct {
	ID            int64  `json:"id,omitempty"`
	Nombre        string `json:"nombre"`
	Imagen        string `json:"imagen"`
	Titulo        string `json:"titulo"`
	Subtitulo     string `json:"subtitulo"`
	Instrucciones string `json:"instrucciones"`
	TextoBoton    string `json:"textoBoton"`
}
