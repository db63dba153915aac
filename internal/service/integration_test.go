package service

import (
	"path/filepath"
	"testing"

	"velocilector/internal/config"
	"velocilector/internal/database"
	"velocilector/internal/models"
	"velocilector/internal/repository"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.Initialize(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// Results are append-only: submitting the same run twice stores two rows.
func TestQuizResultDoubleSubmitStoresTwoRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(repository.NewResultRepository(db))

	result := models.QuizResult{
		SessionID:          "session-1",
		Nombre:             "Ana",
		Categoria:          models.CategoryNinos,
		Tema:               1,
		TipoQuiz:           "lectura",
		Comprension:        90,
		PPM:                200,
		TiempoLectura:      60,
		TiempoCuestionario: 50,
	}

	first := result
	if err := svc.SaveQuizResult(&first); err != nil {
		t.Fatalf("First SaveQuizResult failed: %v", err)
	}
	second := result
	if err := svc.SaveQuizResult(&second); err != nil {
		t.Fatalf("Second SaveQuizResult failed: %v", err)
	}

	rows, err := svc.ListQuizResults(repository.ResultFilter{SessionID: "session-1"})
	if err != nil {
		t.Fatalf("ListQuizResults failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 stored results, got %d", len(rows))
	}
	for _, row := range rows {
		if row.CategoriaLector != ReaderCompetent {
			t.Errorf("Expected stored category %q, got %q", ReaderCompetent, row.CategoriaLector)
		}
	}
}

// An admin save must be visible to the public resolver on the next read.
func TestContentSaveThenResolve(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(repository.NewContentRepository(db), repository.NewCerebralRepository(db))

	record := models.ContentRecord{
		Type:      models.ContentReading,
		Categoria: models.CategoryAdolescentes,
		Tema:      1,
		Idioma:    "es",
		Title:     "El faro",
		Content:   "El faro guiaba a los barcos durante la tormenta.",
		Questions: []models.Question{
			{Prompt: "¿Que guiaba el faro?", Options: []string{"Barcos", "Trenes"}, CorrectIndex: 0},
		},
	}
	if err := svc.SaveContent(&record); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	got, err := svc.GetContent(models.ContentReading, models.CategoryAdolescentes, 1, "es")
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected saved content, got nil")
	}
	if got.Title != "El faro" {
		t.Errorf("Expected saved title, got %q", got.Title)
	}
	if len(got.Questions) != 1 || got.Questions[0].CorrectIndex != 0 {
		t.Errorf("Questions did not round-trip: %+v", got.Questions)
	}

	// A missing translation falls back to the saved Spanish record.
	fallback, err := svc.GetContent(models.ContentReading, models.CategoryAdolescentes, 1, "en")
	if err != nil {
		t.Fatalf("GetContent fallback failed: %v", err)
	}
	if fallback == nil || fallback.Title != "El faro" {
		t.Errorf("Expected default-language fallback, got %+v", fallback)
	}
}
