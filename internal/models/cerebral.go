package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExerciseType identifies the kind of cerebral exercise and decides the
// shape of its data payload.
type ExerciseType string

const (
	ExerciseBailarina          ExerciseType = "bailarina"
	ExerciseSecuencia          ExerciseType = "secuencia"
	ExerciseMemoria            ExerciseType = "memoria"
	ExercisePatron             ExerciseType = "patron"
	ExerciseStroop             ExerciseType = "stroop"
	ExercisePreferencia        ExerciseType = "preferencia"
	ExerciseLateralidad        ExerciseType = "lateralidad"
	ExerciseAceleracionLectura ExerciseType = "aceleracion_lectura"
)

// ExerciseTypes lists all valid exercise types.
var ExerciseTypes = []ExerciseType{
	ExerciseBailarina,
	ExerciseSecuencia,
	ExerciseMemoria,
	ExercisePatron,
	ExerciseStroop,
	ExercisePreferencia,
	ExerciseLateralidad,
	ExerciseAceleracionLectura,
}

// IsValid reports whether t is a known exercise type.
func (t ExerciseType) IsValid() bool {
	for _, known := range ExerciseTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AnswerOption is a selectable answer in a bailarina/secuencia-style exercise.
type AnswerOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Position string `json:"position,omitempty"`
}

// BailarinaData asks which direction the dancer spins.
type BailarinaData struct {
	Instruction   string         `json:"instruction"`
	AnswerOptions []AnswerOption `json:"answerOptions"`
	CorrectAnswer string         `json:"correctAnswer"`
}

// SecuenciaData shows a sequence the user must continue.
type SecuenciaData struct {
	Instruction   string   `json:"instruction"`
	Sequence      []string `json:"sequence"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// MemoriaData flashes items to memorise, then asks about them.
type MemoriaData struct {
	Instruction   string   `json:"instruction"`
	Items         []string `json:"items"`
	DisplayMs     int      `json:"displayMs"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// PatronData asks the user to complete a visual pattern.
type PatronData struct {
	Instruction   string   `json:"instruction"`
	Grid          []string `json:"grid"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// StroopData shows a colour word rendered in a conflicting ink colour.
type StroopData struct {
	Instruction   string   `json:"instruction"`
	StroopWord    string   `json:"stroopWord"`
	StroopColor   string   `json:"stroopColor"`
	StroopOptions []string `json:"stroopOptions"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// PreferenciaData is a preference probe with no correct answer.
type PreferenciaData struct {
	Instruction string   `json:"instruction"`
	Options     []string `json:"options"`
}

// LateralidadData is a left/right dominance probe with no correct answer.
type LateralidadData struct {
	Instruction string   `json:"instruction"`
	Options     []string `json:"options"`
}

// AceleracionData configures a short word-flash acceleration run.
type AceleracionData struct {
	Instruction  string   `json:"instruction"`
	Palabras     []string `json:"palabras"`
	VelocidadPPM int      `json:"velocidadPpm"`
}

// ExerciseData is the tagged payload of a cerebral exercise. Exactly one of
// the variant pointers is non-nil, matching Type.
type ExerciseData struct {
	Type        ExerciseType     `json:"type"`
	Bailarina   *BailarinaData   `json:"bailarina,omitempty"`
	Secuencia   *SecuenciaData   `json:"secuencia,omitempty"`
	Memoria     *MemoriaData     `json:"memoria,omitempty"`
	Patron      *PatronData      `json:"patron,omitempty"`
	Stroop      *StroopData      `json:"stroop,omitempty"`
	Preferencia *PreferenciaData `json:"preferencia,omitempty"`
	Lateralidad *LateralidadData `json:"lateralidad,omitempty"`
	Aceleracion *AceleracionData `json:"aceleracion,omitempty"`
}

// DefaultExerciseData returns the zero-value payload for the given type.
// Switching an exercise's type in the editor resets the payload to this shape.
func DefaultExerciseData(t ExerciseType) ExerciseData {
	data := ExerciseData{Type: t}
	switch t {
	case ExerciseBailarina:
		data.Bailarina = &BailarinaData{AnswerOptions: []AnswerOption{}}
	case ExerciseSecuencia:
		data.Secuencia = &SecuenciaData{Sequence: []string{}, Options: []string{}}
	case ExerciseMemoria:
		data.Memoria = &MemoriaData{Items: []string{}, Options: []string{}, DisplayMs: 3000}
	case ExercisePatron:
		data.Patron = &PatronData{Grid: []string{}, Options: []string{}}
	case ExerciseStroop:
		data.Stroop = &StroopData{StroopOptions: []string{}}
	case ExercisePreferencia:
		data.Preferencia = &PreferenciaData{Options: []string{}}
	case ExerciseLateralidad:
		data.Lateralidad = &LateralidadData{Options: []string{}}
	case ExerciseAceleracionLectura:
		data.Aceleracion = &AceleracionData{Palabras: []string{}, VelocidadPPM: 120}
	}
	return data
}

// CorrectAnswer returns the declared correct answer for types that have one,
// and "" for preference-style types.
func (d ExerciseData) CorrectAnswer() string {
	switch d.Type {
	case ExerciseBailarina:
		if d.Bailarina != nil {
			return d.Bailarina.CorrectAnswer
		}
	case ExerciseSecuencia:
		if d.Secuencia != nil {
			return d.Secuencia.CorrectAnswer
		}
	case ExerciseMemoria:
		if d.Memoria != nil {
			return d.Memoria.CorrectAnswer
		}
	case ExercisePatron:
		if d.Patron != nil {
			return d.Patron.CorrectAnswer
		}
	case ExerciseStroop:
		if d.Stroop != nil {
			return d.Stroop.CorrectAnswer
		}
	}
	return ""
}

// OptionValues returns the declared option values for the payload's type.
func (d ExerciseData) OptionValues() []string {
	switch d.Type {
	case ExerciseBailarina:
		if d.Bailarina != nil {
			values := make([]string, len(d.Bailarina.AnswerOptions))
			for i, opt := range d.Bailarina.AnswerOptions {
				values[i] = opt.Value
			}
			return values
		}
	case ExerciseSecuencia:
		if d.Secuencia != nil {
			return d.Secuencia.Options
		}
	case ExerciseMemoria:
		if d.Memoria != nil {
			return d.Memoria.Options
		}
	case ExercisePatron:
		if d.Patron != nil {
			return d.Patron.Options
		}
	case ExerciseStroop:
		if d.Stroop != nil {
			return d.Stroop.StroopOptions
		}
	case ExercisePreferencia:
		if d.Preferencia != nil {
			return d.Preferencia.Options
		}
	case ExerciseLateralidad:
		if d.Lateralidad != nil {
			return d.Lateralidad.Options
		}
	}
	return nil
}

// Validate checks the payload's internal consistency: the variant must match
// the declared type, and a declared correct answer must be one of the
// declared option values.
func (d ExerciseData) Validate() error {
	if !d.Type.IsValid() {
		return fmt.Errorf("unknown exercise type: %s", d.Type)
	}

	answer := d.CorrectAnswer()
	if answer == "" {
		return nil
	}

	for _, value := range d.OptionValues() {
		if value == answer {
			return nil
		}
	}
	return fmt.Errorf("correct answer %q is not among the declared options", answer)
}

// CerebralExercise is a cerebral content record: the shared content fields
// plus a typed exercise payload.
type CerebralExercise struct {
	ID        int64        `json:"id,omitempty"`
	Categoria Category     `json:"categoria"`
	Tema      int          `json:"tema"`
	Idioma    string       `json:"idioma"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Questions []Question   `json:"questions"`
	Data      ExerciseData `json:"exerciseData"`
	UpdatedAt time.Time    `json:"updatedAt,omitempty"`
}

// EncodeExerciseData serialises a payload for storage.
func EncodeExerciseData(d ExerciseData) (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode exercise data: %w", err)
	}
	return string(raw), nil
}

// DecodeExerciseData parses a stored payload.
func DecodeExerciseData(raw string) (ExerciseData, error) {
	var d ExerciseData
	if raw == "" {
		return d, nil
	}
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return d, fmt.Errorf("failed to decode exercise data: %w", err)
	}
	return d, nil
}
