package content

import (
	"testing"

	"velocilector/internal/models"
)

func TestMergeThemes(t *testing.T) {
	tests := []struct {
		name     string
		saved    []models.Theme
		defaults []models.Theme
		want     []models.Theme
	}{
		{
			name:     "empty both",
			saved:    nil,
			defaults: nil,
			want:     []models.Theme{},
		},
		{
			name:  "saved wins on collision",
			saved: []models.Theme{{Tema: 1, Title: "Custom"}},
			defaults: []models.Theme{
				{Tema: 1, Title: "Default"},
				{Tema: 2, Title: "Default2"},
			},
			want: []models.Theme{
				{Tema: 1, Title: "Custom", Saved: true},
				{Tema: 2, Title: "Default2"},
			},
		},
		{
			name: "sorted ascending",
			saved: []models.Theme{
				{Tema: 5, Title: "Five"},
				{Tema: 3, Title: "Three"},
			},
			defaults: []models.Theme{{Tema: 4, Title: "Four"}},
			want: []models.Theme{
				{Tema: 3, Title: "Three", Saved: true},
				{Tema: 4, Title: "Four"},
				{Tema: 5, Title: "Five", Saved: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeThemes(tt.saved, tt.defaults)
			if len(got) != len(tt.want) {
				t.Fatalf("MergeThemes() returned %d themes, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNextThemeNumber(t *testing.T) {
	tests := []struct {
		name   string
		themes []models.Theme
		want   int
	}{
		{name: "no themes", themes: nil, want: 1},
		{name: "contiguous", themes: []models.Theme{{Tema: 1}, {Tema: 2}}, want: 3},
		{name: "gaps keep max plus one", themes: []models.Theme{{Tema: 1}, {Tema: 7}}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextThemeNumber(tt.themes); got != tt.want {
				t.Errorf("NextThemeNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestListThemesMergesStoreAndDefaults(t *testing.T) {
	store := newFakeStore()
	store.themes["reading/ninos"] = []models.Theme{{Tema: 1, Title: "Custom"}}

	resolver := NewResolver(store)
	got, err := resolver.ListThemes(models.ContentReading, models.CategoryNinos, models.DefaultLanguage)
	if err != nil {
		t.Fatalf("ListThemes() error = %v", err)
	}

	// Built-in ninos reading defaults cover themes 1 and 2; the saved theme 1
	// must shadow the default.
	if len(got) != 2 {
		t.Fatalf("ListThemes() returned %d themes, want 2", len(got))
	}
	if got[0].Tema != 1 || got[0].Title != "Custom" || !got[0].Saved {
		t.Errorf("theme 1 = %+v, want saved Custom", got[0])
	}
	if got[1].Tema != 2 || got[1].Saved {
		t.Errorf("theme 2 = %+v, want built-in default", got[1])
	}
}
