package service

import "testing"

func TestClassifyReader(t *testing.T) {
	tests := []struct {
		name               string
		comprension        int
		ppm                int
		tiempoLectura      int
		tiempoCuestionario int
		want               string
	}{
		{
			name:        "strong comprehension at pace is competent",
			comprension: 90, ppm: 200, tiempoLectura: 60, tiempoCuestionario: 50,
			want: ReaderCompetent,
		},
		{
			name:        "low comprehension is severe regardless of speed",
			comprension: 40, ppm: 300, tiempoLectura: 30, tiempoCuestionario: 20,
			want: ReaderSevere,
		},
		{
			name:        "low comprehension is severe even when slow",
			comprension: 40, ppm: 50, tiempoLectura: 120, tiempoCuestionario: 90,
			want: ReaderSevere,
		},
		{
			name:        "very slow with middling comprehension is severe",
			comprension: 60, ppm: 50, tiempoLectura: 180, tiempoCuestionario: 60,
			want: ReaderSevere,
		},
		{
			name:        "middling comprehension is difficulty",
			comprension: 60, ppm: 150, tiempoLectura: 60, tiempoCuestionario: 40,
			want: ReaderDifficulty,
		},
		{
			name:        "slow reading is difficulty despite comprehension",
			comprension: 85, ppm: 80, tiempoLectura: 90, tiempoCuestionario: 60,
			want: ReaderDifficulty,
		},
		{
			name:        "long question time relative to reading is difficulty",
			comprension: 85, ppm: 160, tiempoLectura: 30, tiempoCuestionario: 120,
			want: ReaderDifficulty,
		},
		{
			name:        "acceptable but not strong is regular",
			comprension: 75, ppm: 120, tiempoLectura: 60, tiempoCuestionario: 45,
			want: ReaderRegular,
		},
		{
			name:        "high comprehension below competent pace is regular",
			comprension: 90, ppm: 120, tiempoLectura: 80, tiempoCuestionario: 50,
			want: ReaderRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyReader(tt.comprension, tt.ppm, tt.tiempoLectura, tt.tiempoCuestionario)
			if got != tt.want {
				t.Errorf("ClassifyReader(%d, %d, %d, %d) = %q, want %q",
					tt.comprension, tt.ppm, tt.tiempoLectura, tt.tiempoCuestionario, got, tt.want)
			}
		})
	}
}

func TestClassifyReaderCascadeOrder(t *testing.T) {
	// Severe must win over every later tier when its condition holds.
	if got := ClassifyReader(30, 500, 10, 5); got != ReaderSevere {
		t.Errorf("severe tier did not take precedence, got %q", got)
	}
	// Difficulty must win over competent when comprehension is weak.
	if got := ClassifyReader(65, 300, 60, 30); got != ReaderDifficulty {
		t.Errorf("difficulty tier did not take precedence, got %q", got)
	}
}
