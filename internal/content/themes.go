package content

import (
	"fmt"
	"sort"

	"velocilector/internal/models"
)

// ListThemes merges saved themes with the built-in default themes for one
// content family and category. When a saved theme and a default theme share
// a number, the saved one wins. The result is sorted ascending by theme
// number with no duplicates.
func (r *Resolver) ListThemes(ct models.ContentType, categoria models.Category, idioma string) ([]models.Theme, error) {
	saved, err := r.store.ListSavedThemes(ct, categoria, idioma)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved themes: %w", err)
	}

	return MergeThemes(saved, defaultThemesFor(ct, categoria)), nil
}

// MergeThemes combines saved and default themes, saved winning on number
// collisions, sorted ascending by theme number.
func MergeThemes(saved, defaults []models.Theme) []models.Theme {
	byNumber := make(map[int]models.Theme, len(saved)+len(defaults))
	for _, theme := range defaults {
		byNumber[theme.Tema] = theme
	}
	for _, theme := range saved {
		theme.Saved = true
		byNumber[theme.Tema] = theme
	}

	merged := make([]models.Theme, 0, len(byNumber))
	for _, theme := range byNumber {
		merged = append(merged, theme)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Tema < merged[j].Tema
	})
	return merged
}

// NextThemeNumber returns the number a newly authored theme should take:
// one past the highest existing theme, or 1 when there are none.
func NextThemeNumber(themes []models.Theme) int {
	max := 0
	for _, theme := range themes {
		if theme.Tema > max {
			max = theme.Tema
		}
	}
	return max + 1
}
