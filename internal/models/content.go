package models

import "time"

// Category identifies the age/audience segment that partitions all content.
type Category string

const (
	CategoryPreescolar     Category = "preescolar"
	CategoryNinos          Category = "ninos"
	CategoryAdolescentes   Category = "adolescentes"
	CategoryUniversitarios Category = "universitarios"
	CategoryProfesionales  Category = "profesionales"
	CategoryAdultoMayor    Category = "adulto_mayor"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryPreescolar,
	CategoryNinos,
	CategoryAdolescentes,
	CategoryUniversitarios,
	CategoryProfesionales,
	CategoryAdultoMayor,
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultLanguage is the language content falls back to when a translation
// is missing.
const DefaultLanguage = "es"

// ContentType distinguishes the three content families sharing the
// (categoria, tema, idioma) addressing scheme.
type ContentType string

const (
	ContentReading      ContentType = "reading"
	ContentRazonamiento ContentType = "razonamiento"
	ContentCerebral     ContentType = "cerebral"
)

// Question is a single comprehension question attached to a content record.
type Question struct {
	ID           int64    `json:"id,omitempty"`
	Prompt       string   `json:"question"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
}

// MinOptions and MaxOptions bound the number of answer options per question.
const (
	MinOptions = 2
	MaxOptions = 5
)

// ContentRecord is a reading or razonamiento passage for one
// (categoria, tema, idioma) combination. The triple is unique in the store.
type ContentRecord struct {
	ID        int64       `json:"id,omitempty"`
	Type      ContentType `json:"-"`
	Categoria Category    `json:"categoria"`
	Tema      int         `json:"tema"`
	Idioma    string      `json:"idioma"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Images    []string    `json:"images,omitempty"`
	Questions []Question  `json:"questions"`
	UpdatedAt time.Time   `json:"updatedAt,omitempty"`
}

// Theme is one entry of the theme enumerator output.
type Theme struct {
	Tema  int    `json:"tema"`
	Title string `json:"title"`
	Saved bool   `json:"saved"`
}
