package editor

import (
	"errors"
	"testing"

	"velocilector/internal/models"
)

func readyEditor(t *testing.T) *Editor {
	t.Helper()
	e := New()
	if err := e.BeginLoad(models.ContentReading, models.CategoryNinos, 1, "es"); err != nil {
		t.Fatalf("BeginLoad() error = %v", err)
	}
	e.CompleteLoad(&models.ContentRecord{
		Title:   "El faro",
		Content: "...",
		Questions: []models.Question{
			{Prompt: "P1", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
		},
	}, nil)
	return e
}

func TestLifecycleTransitions(t *testing.T) {
	e := New()
	if e.State() != StateIdle {
		t.Fatalf("new editor state = %v, want idle", e.State())
	}

	if err := e.BeginLoad(models.ContentReading, models.CategoryNinos, 1, "es"); err != nil {
		t.Fatalf("BeginLoad() error = %v", err)
	}
	if e.State() != StateLoading {
		t.Errorf("state after BeginLoad = %v, want loading", e.State())
	}

	// Selecting again mid-load is rejected
	if err := e.BeginLoad(models.ContentReading, models.CategoryNinos, 2, "es"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("BeginLoad() while loading error = %v, want ErrInvalidTransition", err)
	}

	e.CompleteLoad(nil, nil)
	if e.State() != StateReady {
		t.Errorf("state after CompleteLoad = %v, want ready", e.State())
	}

	if _, err := e.BeginSave(); err != nil {
		t.Fatalf("BeginSave() error = %v", err)
	}
	if e.State() != StateSaving {
		t.Errorf("state after BeginSave = %v, want saving", e.State())
	}

	e.CompleteSave(nil)
	if e.State() != StateReady {
		t.Errorf("state after CompleteSave = %v, want ready", e.State())
	}
}

func TestFailedSaveKeepsDraft(t *testing.T) {
	e := readyEditor(t)
	if err := e.SetTitle("Edited"); err != nil {
		t.Fatalf("SetTitle() error = %v", err)
	}

	if _, err := e.BeginSave(); err != nil {
		t.Fatalf("BeginSave() error = %v", err)
	}
	e.CompleteSave(errors.New("network down"))

	if e.State() != StateError {
		t.Errorf("state after failed save = %v, want error", e.State())
	}
	if e.Draft().Title != "Edited" {
		t.Errorf("draft title after failed save = %q, want Edited", e.Draft().Title)
	}

	e.Acknowledge()
	if e.State() != StateReady {
		t.Errorf("state after Acknowledge = %v, want ready", e.State())
	}
}

func TestAddQuestionAppendsEmptyShape(t *testing.T) {
	e := readyEditor(t)
	if err := e.AddQuestion(); err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}

	questions := e.Draft().Questions
	added := questions[len(questions)-1]
	if added.Prompt != "" {
		t.Errorf("new question prompt = %q, want empty", added.Prompt)
	}
	if len(added.Options) != 3 {
		t.Errorf("new question has %d options, want 3", len(added.Options))
	}
	if added.CorrectIndex != 0 {
		t.Errorf("new question correct index = %d, want 0", added.CorrectIndex)
	}
}

func TestRemoveOptionClampsCorrectIndex(t *testing.T) {
	e := readyEditor(t)

	// Question 0 has options a,b,c with correct=2. Removing the last option
	// must clamp correct to the new last index.
	if err := e.RemoveOption(0, 2); err != nil {
		t.Fatalf("RemoveOption() error = %v", err)
	}

	q := e.Draft().Questions[0]
	if len(q.Options) != 2 {
		t.Fatalf("options after removal = %d, want 2", len(q.Options))
	}
	if q.CorrectIndex != 1 {
		t.Errorf("correct index after removal = %d, want 1 (clamped)", q.CorrectIndex)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		t.Errorf("correct index %d out of bounds [0,%d)", q.CorrectIndex, len(q.Options))
	}
}

func TestOptionBounds(t *testing.T) {
	e := readyEditor(t)

	// Grow to the max of 5
	for i := 0; i < 2; i++ {
		if err := e.AddOption(0); err != nil {
			t.Fatalf("AddOption() #%d error = %v", i, err)
		}
	}
	if err := e.AddOption(0); !errors.Is(err, ErrOptionBounds) {
		t.Errorf("AddOption() past max error = %v, want ErrOptionBounds", err)
	}

	// Shrink to the min of 2
	for i := 0; i < 3; i++ {
		if err := e.RemoveOption(0, 0); err != nil {
			t.Fatalf("RemoveOption() #%d error = %v", i, err)
		}
	}
	if err := e.RemoveOption(0, 0); !errors.Is(err, ErrOptionBounds) {
		t.Errorf("RemoveOption() past min error = %v, want ErrOptionBounds", err)
	}
}

func TestSetCorrectIndexClamps(t *testing.T) {
	e := readyEditor(t)

	if err := e.SetCorrectIndex(0, 99); err != nil {
		t.Fatalf("SetCorrectIndex() error = %v", err)
	}
	if got := e.Draft().Questions[0].CorrectIndex; got != 2 {
		t.Errorf("correct index = %d, want clamped to 2", got)
	}

	if err := e.SetCorrectIndex(0, -5); err != nil {
		t.Fatalf("SetCorrectIndex() error = %v", err)
	}
	if got := e.Draft().Questions[0].CorrectIndex; got != 0 {
		t.Errorf("correct index = %d, want clamped to 0", got)
	}
}

func TestSwitchExerciseTypeResetsPayload(t *testing.T) {
	e := New()
	if err := e.BeginLoad(models.ContentCerebral, models.CategoryNinos, 1, "es"); err != nil {
		t.Fatalf("BeginLoad() error = %v", err)
	}
	e.CompleteCerebralLoad(&models.CerebralExercise{
		Title: "Colores",
		Data: models.ExerciseData{
			Type: models.ExerciseStroop,
			Stroop: &models.StroopData{
				StroopWord:    "ROJO",
				StroopColor:   "azul",
				StroopOptions: []string{"rojo", "azul"},
				CorrectAnswer: "azul",
			},
		},
	}, nil)

	if err := e.SwitchExerciseType(models.ExerciseMemoria); err != nil {
		t.Fatalf("SwitchExerciseType() error = %v", err)
	}

	data := e.Draft().ExerciseData
	if data.Type != models.ExerciseMemoria {
		t.Errorf("payload type = %v, want memoria", data.Type)
	}
	if data.Stroop != nil {
		t.Error("stroop payload survived a type switch, want reset")
	}
	if data.Memoria == nil {
		t.Error("memoria payload missing after type switch")
	}
}

func TestSetExerciseDataValidates(t *testing.T) {
	e := New()
	if err := e.BeginLoad(models.ContentCerebral, models.CategoryNinos, 1, "es"); err != nil {
		t.Fatalf("BeginLoad() error = %v", err)
	}
	e.CompleteCerebralLoad(nil, nil)

	bad := models.ExerciseData{
		Type: models.ExerciseStroop,
		Stroop: &models.StroopData{
			StroopOptions: []string{"rojo", "azul"},
			CorrectAnswer: "verde",
		},
	}
	if err := e.SetExerciseData(bad); err == nil {
		t.Error("SetExerciseData() accepted a correct answer outside the options")
	}
}
