package content

import (
	"testing"

	"velocilector/internal/models"
)

// Callers append synthesised answer options to the returned levels, so
// each call must get its own copy of the built-in exercise.
func TestDefaultVelocidadReturnsIndependentCopies(t *testing.T) {
	first := DefaultVelocidad(models.CategoryNinos)
	if first == nil {
		t.Fatal("Expected a built-in exercise for ninos")
	}
	first.Niveles[0].Opciones = append(first.Niveles[0].Opciones, "mutated")
	first.Niveles[0].Palabras[0] = "mutated"
	first.Niveles = first.Niveles[:1]

	second := DefaultVelocidad(models.CategoryNinos)
	if second == nil {
		t.Fatal("Expected a built-in exercise for ninos")
	}
	if len(second.Niveles) != 2 {
		t.Fatalf("Expected 2 levels in the fresh copy, got %d", len(second.Niveles))
	}
	for _, opcion := range second.Niveles[0].Opciones {
		if opcion == "mutated" {
			t.Error("Mutation through the first copy leaked into the shared default")
		}
	}
	if second.Niveles[0].Palabras[0] != "sol" {
		t.Errorf("Expected first word %q, got %q", "sol", second.Niveles[0].Palabras[0])
	}
}

func TestDefaultVelocidadUnknownCategory(t *testing.T) {
	if got := DefaultVelocidad(models.CategoryAdultoMayor); got != nil {
		t.Errorf("Expected nil for a category with no built-in exercise, got %+v", got)
	}
}
