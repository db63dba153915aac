package content

import (
	"fmt"

	"velocilector/internal/models"
)

// Store is the read side of the content tables the resolver works over.
// A nil record with a nil error means "not saved".
type Store interface {
	GetContent(ct models.ContentType, categoria models.Category, tema int, idioma string) (*models.ContentRecord, error)
	GetCerebral(categoria models.Category, tema int, idioma string) (*models.CerebralExercise, error)
	ListSavedThemes(ct models.ContentType, categoria models.Category, idioma string) ([]models.Theme, error)
}

// Resolver applies the three-tier fallback over saved content:
// exact (categoria, tema, idioma), then the default language, then the
// built-in defaults table. The same chain is used for all three content
// families.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the content for (categoria, tema, idioma), or nil when
// nothing is found after the full fallback chain. Read-only.
func (r *Resolver) Resolve(ct models.ContentType, categoria models.Category, tema int, idioma string) (*models.ContentRecord, error) {
	if ct == models.ContentCerebral {
		return nil, fmt.Errorf("cerebral content must be resolved via ResolveCerebral")
	}

	record, err := r.store.GetContent(ct, categoria, tema, idioma)
	if err != nil {
		return nil, fmt.Errorf("failed to query content: %w", err)
	}
	if record != nil {
		return record, nil
	}

	if idioma != models.DefaultLanguage {
		record, err = r.store.GetContent(ct, categoria, tema, models.DefaultLanguage)
		if err != nil {
			return nil, fmt.Errorf("failed to query default-language content: %w", err)
		}
		if record != nil {
			return record, nil
		}
	}

	switch ct {
	case models.ContentReading:
		return DefaultReading(categoria, tema), nil
	case models.ContentRazonamiento:
		return DefaultRazonamiento(categoria, tema), nil
	}
	return nil, nil
}

// ResolveCerebral resolves a cerebral exercise through the same chain.
func (r *Resolver) ResolveCerebral(categoria models.Category, tema int, idioma string) (*models.CerebralExercise, error) {
	record, err := r.store.GetCerebral(categoria, tema, idioma)
	if err != nil {
		return nil, fmt.Errorf("failed to query cerebral content: %w", err)
	}
	if record != nil {
		return record, nil
	}

	if idioma != models.DefaultLanguage {
		record, err = r.store.GetCerebral(categoria, tema, models.DefaultLanguage)
		if err != nil {
			return nil, fmt.Errorf("failed to query default-language cerebral content: %w", err)
		}
		if record != nil {
			return record, nil
		}
	}

	return DefaultCerebral(categoria, tema), nil
}
