package content

import (
	"strconv"
	"testing"

	"velocilector/internal/models"
)

// fakeStore is an in-memory Store for resolver tests.
type fakeStore struct {
	contents map[string]*models.ContentRecord
	cerebral map[string]*models.CerebralExercise
	themes   map[string][]models.Theme
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		contents: make(map[string]*models.ContentRecord),
		cerebral: make(map[string]*models.CerebralExercise),
		themes:   make(map[string][]models.Theme),
	}
}

func contentKey(ct models.ContentType, categoria models.Category, tema int, idioma string) string {
	return string(ct) + "/" + string(categoria) + "/" + strconv.Itoa(tema) + "/" + idioma
}

func (s *fakeStore) GetContent(ct models.ContentType, categoria models.Category, tema int, idioma string) (*models.ContentRecord, error) {
	return s.contents[contentKey(ct, categoria, tema, idioma)], nil
}

func (s *fakeStore) GetCerebral(categoria models.Category, tema int, idioma string) (*models.CerebralExercise, error) {
	return s.cerebral[contentKey(models.ContentCerebral, categoria, tema, idioma)], nil
}

func (s *fakeStore) ListSavedThemes(ct models.ContentType, categoria models.Category, idioma string) ([]models.Theme, error) {
	return s.themes[string(ct)+"/"+string(categoria)], nil
}

func TestResolveExactMatch(t *testing.T) {
	store := newFakeStore()
	saved := &models.ContentRecord{
		Categoria: models.CategoryNinos, Tema: 1, Idioma: "en", Title: "The lighthouse",
	}
	store.contents[contentKey(models.ContentReading, models.CategoryNinos, 1, "en")] = saved

	resolver := NewResolver(store)
	got, err := resolver.Resolve(models.ContentReading, models.CategoryNinos, 1, "en")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got == nil || got.Title != "The lighthouse" {
		t.Errorf("Resolve() = %+v, want saved english record", got)
	}
}

func TestResolveFallsBackToDefaultLanguage(t *testing.T) {
	store := newFakeStore()
	saved := &models.ContentRecord{
		Categoria: models.CategoryNinos, Tema: 1, Idioma: models.DefaultLanguage, Title: "El faro",
	}
	store.contents[contentKey(models.ContentReading, models.CategoryNinos, 1, models.DefaultLanguage)] = saved

	resolver := NewResolver(store)
	got, err := resolver.Resolve(models.ContentReading, models.CategoryNinos, 1, "en")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got == nil || got.Title != "El faro" {
		t.Errorf("Resolve() = %+v, want default-language record", got)
	}
}

func TestResolveFallsBackToBuiltinDefault(t *testing.T) {
	// Nothing saved in any language; the built-in default must be returned
	// unchanged.
	resolver := NewResolver(newFakeStore())

	got, err := resolver.Resolve(models.ContentReading, models.CategoryNinos, 1, "en")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := DefaultReading(models.CategoryNinos, 1)
	if got == nil {
		t.Fatal("Resolve() = nil, want built-in default")
	}
	if got.Title != want.Title || got.Content != want.Content {
		t.Errorf("Resolve() altered the built-in default: got %q, want %q", got.Title, want.Title)
	}
	if len(got.Questions) != len(want.Questions) {
		t.Errorf("Resolve() returned %d questions, want %d", len(got.Questions), len(want.Questions))
	}
}

func TestResolveReturnsNilWhenNothingExists(t *testing.T) {
	resolver := NewResolver(newFakeStore())

	got, err := resolver.Resolve(models.ContentReading, models.CategoryPreescolar, 9, "en")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != nil {
		t.Errorf("Resolve() = %+v, want nil", got)
	}
}

func TestResolveCerebralUsesFullChain(t *testing.T) {
	// The cerebral family gets the same three-tier chain as reading and
	// razonamiento, including the built-in tier.
	resolver := NewResolver(newFakeStore())

	got, err := resolver.ResolveCerebral(models.CategoryAdolescentes, 1, "en")
	if err != nil {
		t.Fatalf("ResolveCerebral() error = %v", err)
	}
	if got == nil {
		t.Fatal("ResolveCerebral() = nil, want built-in default")
	}
	if got.Data.Type != models.ExerciseBailarina {
		t.Errorf("ResolveCerebral() type = %v, want bailarina", got.Data.Type)
	}
	if err := got.Data.Validate(); err != nil {
		t.Errorf("built-in cerebral default is invalid: %v", err)
	}
}

func TestResolveSavedWinsOverDefault(t *testing.T) {
	store := newFakeStore()
	saved := &models.ContentRecord{
		Categoria: models.CategoryNinos, Tema: 1, Idioma: models.DefaultLanguage, Title: "Custom",
	}
	store.contents[contentKey(models.ContentReading, models.CategoryNinos, 1, models.DefaultLanguage)] = saved

	resolver := NewResolver(store)
	got, err := resolver.Resolve(models.ContentReading, models.CategoryNinos, 1, models.DefaultLanguage)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got == nil || got.Title != "Custom" {
		t.Errorf("Resolve() = %+v, want the saved record over the built-in default", got)
	}
}
