package service

import (
	"fmt"

	"velocilector/internal/content"
	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/validation"
)

// ContentService is the read/write surface over saved exercise content.
// Reads go through the fallback resolver; writes validate and upsert the
// whole record (last write wins).
type ContentService struct {
	contentRepo  *repository.ContentRepository
	cerebralRepo *repository.CerebralRepository
	resolver     *content.Resolver
}

// NewContentService creates a new content service
func NewContentService(contentRepo *repository.ContentRepository, cerebralRepo *repository.CerebralRepository) *ContentService {
	s := &ContentService{
		contentRepo:  contentRepo,
		cerebralRepo: cerebralRepo,
	}
	s.resolver = content.NewResolver(repoStore{contentRepo, cerebralRepo})
	return s
}

// repoStore adapts the repositories to the resolver's Store interface
type repoStore struct {
	contentRepo  *repository.ContentRepository
	cerebralRepo *repository.CerebralRepository
}

func (s repoStore) GetContent(ct models.ContentType, categoria models.Category, tema int, idioma string) (*models.ContentRecord, error) {
	return s.contentRepo.Get(ct, categoria, tema, idioma)
}

func (s repoStore) GetCerebral(categoria models.Category, tema int, idioma string) (*models.CerebralExercise, error) {
	return s.cerebralRepo.Get(categoria, tema, idioma)
}

func (s repoStore) ListSavedThemes(ct models.ContentType, categoria models.Category, idioma string) ([]models.Theme, error) {
	if ct == models.ContentCerebral {
		return s.cerebralRepo.ListSavedThemes(categoria, idioma)
	}
	return s.contentRepo.ListSavedThemes(ct, categoria, idioma)
}

// GetContent resolves reading or razonamiento content through the fallback
// chain. Returns nil when nothing is found, which handlers serve as
// {"content": null}.
func (s *ContentService) GetContent(ct models.ContentType, categoria models.Category, tema int, idioma string) (*models.ContentRecord, error) {
	if err := validation.ValidateCategoria(categoria); err != nil {
		return nil, err
	}
	if err := validation.ValidateTema(tema); err != nil {
		return nil, err
	}
	if idioma == "" {
		idioma = models.DefaultLanguage
	}
	return s.resolver.Resolve(ct, categoria, tema, idioma)
}

// GetCerebral resolves a cerebral exercise through the same fallback chain
func (s *ContentService) GetCerebral(categoria models.Category, tema int, idioma string) (*models.CerebralExercise, error) {
	if err := validation.ValidateCategoria(categoria); err != nil {
		return nil, err
	}
	if err := validation.ValidateTema(tema); err != nil {
		return nil, err
	}
	if idioma == "" {
		idioma = models.DefaultLanguage
	}
	return s.resolver.ResolveCerebral(categoria, tema, idioma)
}

// ListThemes merges saved and built-in themes for the admin theme selector
func (s *ContentService) ListThemes(ct models.ContentType, categoria models.Category, idioma string) ([]models.Theme, error) {
	if err := validation.ValidateCategoria(categoria); err != nil {
		return nil, err
	}
	if idioma == "" {
		idioma = models.DefaultLanguage
	}
	return s.resolver.ListThemes(ct, categoria, idioma)
}

// NextThemeNumber returns max(existing)+1 for a family's theme list
func (s *ContentService) NextThemeNumber(ct models.ContentType, categoria models.Category, idioma string) (int, error) {
	themes, err := s.ListThemes(ct, categoria, idioma)
	if err != nil {
		return 0, err
	}
	return content.NextThemeNumber(themes), nil
}

// SaveContent validates and persists a reading or razonamiento record
func (s *ContentService) SaveContent(record *models.ContentRecord) error {
	if record.Type != models.ContentReading && record.Type != models.ContentRazonamiento {
		return validation.ValidationError{Field: "tipo", Message: "unknown content type"}
	}
	if err := validation.ValidateCategoria(record.Categoria); err != nil {
		return err
	}
	if err := validation.ValidateTema(record.Tema); err != nil {
		return err
	}
	if err := validation.ValidateQuestions(record.Questions); err != nil {
		return err
	}
	if record.Idioma == "" {
		record.Idioma = models.DefaultLanguage
	}

	if err := s.contentRepo.Upsert(record); err != nil {
		return fmt.Errorf("failed to save content: %w", err)
	}
	return nil
}

// SaveCerebral validates and persists a cerebral exercise
func (s *ContentService) SaveCerebral(exercise *models.CerebralExercise) error {
	if err := validation.ValidateCategoria(exercise.Categoria); err != nil {
		return err
	}
	if err := validation.ValidateTema(exercise.Tema); err != nil {
		return err
	}
	if err := exercise.Data.Validate(); err != nil {
		return err
	}
	if len(exercise.Questions) > 0 {
		if err := validation.ValidateQuestions(exercise.Questions); err != nil {
			return err
		}
	}
	if exercise.Idioma == "" {
		exercise.Idioma = models.DefaultLanguage
	}

	if err := s.cerebralRepo.Upsert(exercise); err != nil {
		return fmt.Errorf("failed to save cerebral exercise: %w", err)
	}
	return nil
}
