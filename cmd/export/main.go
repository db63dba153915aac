package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"velocilector/internal/config"
	"velocilector/internal/database"
	"velocilector/internal/models"
	"velocilector/internal/repository"
)

// Export bundles everything an analyst or a migration needs: the full
// result history plus the session log.
type Export struct {
	ExportedAt      time.Time               `json:"exportedAt"`
	QuizResults     []models.QuizResult     `json:"quizResults"`
	TrainingResults []models.TrainingResult `json:"trainingResults"`
	CerebralResults []models.CerebralResult `json:"cerebralResults"`
	Sessions        []models.Session        `json:"sessions"`
}

func main() {
	output := flag.String("output", "", "Output file path (default: export_YYYYMMDD_HHMMSS.json)")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	resultRepo := repository.NewResultRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	export := Export{ExportedAt: time.Now().UTC()}

	if export.QuizResults, err = resultRepo.ListQuizResults(repository.ResultFilter{}); err != nil {
		log.Fatalf("Failed to export quiz results: %v", err)
	}
	if export.TrainingResults, err = resultRepo.ListTrainingResults(repository.ResultFilter{}); err != nil {
		log.Fatalf("Failed to export training results: %v", err)
	}
	if export.CerebralResults, err = resultRepo.ListCerebralResults(repository.ResultFilter{}); err != nil {
		log.Fatalf("Failed to export cerebral results: %v", err)
	}
	if export.Sessions, err = sessionRepo.List(false); err != nil {
		log.Fatalf("Failed to export sessions: %v", err)
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("export_%s.json", time.Now().Format("20060102_150405"))
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}

	log.Printf("Exported %d quiz, %d training, %d cerebral results and %d sessions to %s",
		len(export.QuizResults), len(export.TrainingResults), len(export.CerebralResults),
		len(export.Sessions), path)
}
