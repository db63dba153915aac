package models

import "time"

// QuizResult is a completed lectura/razonamiento/velocidad run. Results are
// append-only: there is no update or delete path.
type QuizResult struct {
	ID                 int64     `json:"id,omitempty"`
	SessionID          string    `json:"sessionId"`
	Nombre             string    `json:"nombre"`
	Categoria          Category  `json:"categoria"`
	Tema               int       `json:"tema"`
	TipoQuiz           string    `json:"tipoQuiz"`
	Comprension        int       `json:"comprension"` // percent, 0-100
	PPM                int       `json:"ppm"`
	TiempoLectura      int       `json:"tiempoLectura"`      // seconds
	TiempoCuestionario int       `json:"tiempoCuestionario"` // seconds
	CategoriaLector    string    `json:"categoriaLector"`
	Respuestas         string    `json:"respuestas"` // raw answers JSON, stored verbatim
	IsPwa              bool      `json:"isPwa"`
	CreatedAt          time.Time `json:"createdAt"`
}

// TrainingResult is a generic completed training exercise.
type TrainingResult struct {
	ID            int64     `json:"id,omitempty"`
	SessionID     string    `json:"sessionId"`
	Nombre        string    `json:"nombre"`
	Categoria     Category  `json:"categoria"`
	TipoEjercicio string    `json:"tipoEjercicio"`
	Puntaje       int       `json:"puntaje"`
	DuracionMs    int       `json:"duracionMs"`
	Respuestas    string    `json:"respuestas"`
	IsPwa         bool      `json:"isPwa"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CerebralResult is a completed cerebral exercise.
type CerebralResult struct {
	ID           int64        `json:"id,omitempty"`
	SessionID    string       `json:"sessionId"`
	Nombre       string       `json:"nombre"`
	Categoria    Category     `json:"categoria"`
	Tema         int          `json:"tema"`
	ExerciseType ExerciseType `json:"exerciseType"`
	Respuesta    string       `json:"respuesta"`
	EsCorrecta   *bool        `json:"esCorrecta,omitempty"` // nil for preference-style exercises
	DuracionMs   int          `json:"duracionMs"`
	IsPwa        bool         `json:"isPwa"`
	CreatedAt    time.Time    `json:"createdAt"`
}
