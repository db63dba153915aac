package service

import (
	"testing"

	"velocilector/internal/models"
)

func TestEnsureCorrectOption(t *testing.T) {
	tests := []struct {
		name        string
		nivel       models.VelocidadNivel
		wantOptions []string
	}{
		{
			name: "answer already present is untouched",
			nivel: models.VelocidadNivel{
				Palabras: []string{"sol", "luna"},
				Opciones: []string{"sol", "mar"},
			},
			wantOptions: []string{"sol", "mar"},
		},
		{
			name: "missing answer is appended",
			nivel: models.VelocidadNivel{
				Palabras: []string{"sol", "luna"},
				Opciones: []string{"mar", "rio"},
			},
			wantOptions: []string{"mar", "rio", "sol"},
		},
		{
			name: "count question appends the word count",
			nivel: models.VelocidadNivel{
				Palabras:     []string{"sol", "luna", "mar"},
				Opciones:     []string{"2", "4"},
				TipoPregunta: "conteo",
			},
			wantOptions: []string{"2", "4", "3"},
		},
		{
			name: "case-insensitive match is untouched",
			nivel: models.VelocidadNivel{
				Palabras: []string{"Sol"},
				Opciones: []string{"sol", "mar"},
			},
			wantOptions: []string{"sol", "mar"},
		},
		{
			name: "no words leaves options alone",
			nivel: models.VelocidadNivel{
				Opciones: []string{"a", "b"},
			},
			wantOptions: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ensureCorrectOption(&tt.nivel)
			if len(tt.nivel.Opciones) != len(tt.wantOptions) {
				t.Fatalf("options = %v, want %v", tt.nivel.Opciones, tt.wantOptions)
			}
			for i, opt := range tt.wantOptions {
				if tt.nivel.Opciones[i] != opt {
					t.Errorf("options[%d] = %q, want %q", i, tt.nivel.Opciones[i], opt)
				}
			}
		})
	}
}
