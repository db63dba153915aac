package editor

import (
	"errors"
	"fmt"

	"velocilector/internal/models"
)

// State is the editor lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateSaving
	StateError
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	case StateError:
		return "error"
	}
	return "unknown"
}

var (
	ErrNotReady          = errors.New("editor has no loaded draft")
	ErrInvalidTransition = errors.New("invalid editor state transition")
	ErrOptionBounds      = errors.New("questions must keep between 2 and 5 options")
)

// Draft is the full in-memory working copy of one content record. Saves
// always persist the whole draft, never a diff.
type Draft struct {
	Type      models.ContentType
	Categoria models.Category
	Tema      int
	Idioma    string
	Title     string
	Content   string
	Questions []models.Question

	// Cerebral drafts only
	ExerciseData models.ExerciseData
}

// Editor holds one draft per content type/category combination and walks the
// Idle -> Loading -> Ready -> Saving -> Ready lifecycle. A failed load or
// save moves to Error without discarding the prior draft.
type Editor struct {
	state   State
	draft   Draft
	lastErr error
}

// New creates an editor in the Idle state.
func New() *Editor {
	return &Editor{state: StateIdle}
}

// State returns the current lifecycle state.
func (e *Editor) State() State {
	return e.state
}

// Err returns the error recorded by the last failed load or save.
func (e *Editor) Err() error {
	return e.lastErr
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() Draft {
	return e.draft
}

// BeginLoad marks a selection change: the editor starts loading the record
// for the new (type, categoria, tema) selection.
func (e *Editor) BeginLoad(ct models.ContentType, categoria models.Category, tema int, idioma string) error {
	if e.state == StateLoading || e.state == StateSaving {
		return fmt.Errorf("%w: cannot select while %s", ErrInvalidTransition, e.state)
	}
	e.state = StateLoading
	e.draft.Type = ct
	e.draft.Categoria = categoria
	e.draft.Tema = tema
	e.draft.Idioma = idioma
	return nil
}

// CompleteLoad installs the fetched record (nil means a fresh empty draft)
// or records a load failure, keeping the previous draft contents.
func (e *Editor) CompleteLoad(record *models.ContentRecord, err error) {
	if err != nil {
		e.state = StateError
		e.lastErr = err
		return
	}

	if record == nil {
		e.draft.Title = ""
		e.draft.Content = ""
		e.draft.Questions = nil
	} else {
		e.draft.Title = record.Title
		e.draft.Content = record.Content
		e.draft.Questions = append([]models.Question(nil), record.Questions...)
	}
	e.state = StateReady
	e.lastErr = nil
}

// CompleteCerebralLoad installs a fetched cerebral exercise.
func (e *Editor) CompleteCerebralLoad(record *models.CerebralExercise, err error) {
	if err != nil {
		e.state = StateError
		e.lastErr = err
		return
	}

	if record == nil {
		e.draft.Title = ""
		e.draft.Content = ""
		e.draft.Questions = nil
		e.draft.ExerciseData = models.DefaultExerciseData(models.ExerciseBailarina)
	} else {
		e.draft.Title = record.Title
		e.draft.Content = record.Content
		e.draft.Questions = append([]models.Question(nil), record.Questions...)
		e.draft.ExerciseData = record.Data
	}
	e.state = StateReady
	e.lastErr = nil
}

// Acknowledge returns an errored editor to Ready so editing can continue
// with the retained draft.
func (e *Editor) Acknowledge() {
	if e.state == StateError {
		e.state = StateReady
	}
}

// SetTitle updates the draft title.
func (e *Editor) SetTitle(title string) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	e.draft.Title = title
	return nil
}

// SetContent updates the draft body.
func (e *Editor) SetContent(content string) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	e.draft.Content = content
	return nil
}

// AddQuestion appends an empty question with three blank options and the
// first option marked correct.
func (e *Editor) AddQuestion() error {
	if err := e.requireReady(); err != nil {
		return err
	}
	e.draft.Questions = append(e.draft.Questions, models.Question{
		Prompt:       "",
		Options:      []string{"", "", ""},
		CorrectIndex: 0,
	})
	return nil
}

// RemoveQuestion deletes the question at index.
func (e *Editor) RemoveQuestion(index int) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if index < 0 || index >= len(e.draft.Questions) {
		return fmt.Errorf("question index %d out of range", index)
	}
	e.draft.Questions = append(e.draft.Questions[:index], e.draft.Questions[index+1:]...)
	return nil
}

// SetQuestionPrompt updates a question's prompt text.
func (e *Editor) SetQuestionPrompt(index int, prompt string) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if index < 0 || index >= len(e.draft.Questions) {
		return fmt.Errorf("question index %d out of range", index)
	}
	e.draft.Questions[index].Prompt = prompt
	return nil
}

// AddOption appends a blank option to a question, bounded at 5.
func (e *Editor) AddOption(questionIndex int) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if questionIndex < 0 || questionIndex >= len(e.draft.Questions) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	q := &e.draft.Questions[questionIndex]
	if len(q.Options) >= models.MaxOptions {
		return ErrOptionBounds
	}
	q.Options = append(q.Options, "")
	return nil
}

// RemoveOption deletes an option from a question, bounded at 2, and
// re-clamps the correct index so it always points at a surviving option.
func (e *Editor) RemoveOption(questionIndex, optionIndex int) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if questionIndex < 0 || questionIndex >= len(e.draft.Questions) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	q := &e.draft.Questions[questionIndex]
	if len(q.Options) <= models.MinOptions {
		return ErrOptionBounds
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("option index %d out of range", optionIndex)
	}

	q.Options = append(q.Options[:optionIndex], q.Options[optionIndex+1:]...)
	if q.CorrectIndex > len(q.Options)-1 {
		q.CorrectIndex = len(q.Options) - 1
	}
	return nil
}

// SetOption updates an option's text.
func (e *Editor) SetOption(questionIndex, optionIndex int, text string) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if questionIndex < 0 || questionIndex >= len(e.draft.Questions) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	q := &e.draft.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("option index %d out of range", optionIndex)
	}
	q.Options[optionIndex] = text
	return nil
}

// SetCorrectIndex marks an option as correct, clamped into range.
func (e *Editor) SetCorrectIndex(questionIndex, correct int) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if questionIndex < 0 || questionIndex >= len(e.draft.Questions) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	q := &e.draft.Questions[questionIndex]
	if correct < 0 {
		correct = 0
	}
	if correct > len(q.Options)-1 {
		correct = len(q.Options) - 1
	}
	q.CorrectIndex = correct
	return nil
}

// SwitchExerciseType resets the cerebral payload to the new type's default
// shape. Losing the previous payload on a type change is intentional.
func (e *Editor) SwitchExerciseType(t models.ExerciseType) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if !t.IsValid() {
		return fmt.Errorf("unknown exercise type: %s", t)
	}
	e.draft.ExerciseData = models.DefaultExerciseData(t)
	return nil
}

// SetExerciseData replaces the cerebral payload after validating it.
func (e *Editor) SetExerciseData(data models.ExerciseData) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	e.draft.ExerciseData = data
	return nil
}

// BeginSave moves the editor into Saving; the caller persists the full
// draft and reports back with CompleteSave.
func (e *Editor) BeginSave() (Draft, error) {
	if e.state != StateReady {
		return Draft{}, fmt.Errorf("%w: cannot save while %s", ErrInvalidTransition, e.state)
	}
	e.state = StateSaving
	return e.draft, nil
}

// CompleteSave records the save outcome. A failure keeps the draft intact so
// the operator can retry.
func (e *Editor) CompleteSave(err error) {
	if err != nil {
		e.state = StateError
		e.lastErr = err
		return
	}
	e.state = StateReady
	e.lastErr = nil
}

func (e *Editor) requireReady() error {
	if e.state != StateReady {
		return fmt.Errorf("%w (state: %s)", ErrNotReady, e.state)
	}
	return nil
}
