package models

// VelocidadNivel is one level of a flashing-word exercise: a word list shown
// at a given speed in a given grid pattern, followed by one question.
type VelocidadNivel struct {
	Nivel        int      `json:"nivel"`
	Patron       string   `json:"patron"`
	Velocidad    int      `json:"velocidad"` // words per minute
	Palabras     []string `json:"palabras"`
	Opciones     []string `json:"opciones"`
	TipoPregunta string   `json:"tipoPregunta"`
}

// VelocidadEjercicio is a per-category flashing-word exercise definition.
// If a level's Opciones does not contain the correct answer derived from
// Palabras, the resolver synthesises it before serving.
type VelocidadEjercicio struct {
	ID                     int64            `json:"id,omitempty"`
	Categoria              Category         `json:"categoria"`
	Niveles                []VelocidadNivel `json:"niveles"`
	TiempoAnimacionInicial int              `json:"tiempoAnimacionInicial"`
	VelocidadAnimacion     int              `json:"velocidadAnimacion"`
}
