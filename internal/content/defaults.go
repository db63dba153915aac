package content

import "velocilector/internal/models"

// Built-in default content served when no saved record exists for a
// (categoria, tema) pair in any language. Defaults are always in the
// default language.

func defaultQuestion(prompt string, options []string, correct int) models.Question {
	return models.Question{Prompt: prompt, Options: options, CorrectIndex: correct}
}

// defaultReadings holds the built-in reading passages keyed by category and theme.
var defaultReadings = map[models.Category]map[int]models.ContentRecord{
	models.CategoryPreescolar: {
		1: {
			Categoria: models.CategoryPreescolar, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "El gato y la luna",
			Content: "Había una vez un gato pequeño que miraba la luna cada noche. La luna era grande y blanca. El gato quería tocarla, pero estaba muy lejos. Una noche, el gato vio la luna reflejada en el agua del estanque y sonrió: por fin podía jugar con ella.",
			Questions: []models.Question{
				defaultQuestion("¿Qué miraba el gato cada noche?", []string{"El sol", "La luna", "Las nubes"}, 1),
				defaultQuestion("¿Dónde vio el gato la luna al final?", []string{"En el cielo", "En el agua", "En un espejo"}, 1),
			},
		},
		2: {
			Categoria: models.CategoryPreescolar, Tema: 2, Idioma: models.DefaultLanguage,
			Title:   "La semilla valiente",
			Content: "Una semilla pequeña vivía bajo la tierra. Tenía miedo de salir, pero un día sintió el calor del sol y empujó con fuerza. Poco a poco creció hasta convertirse en un girasol alto y alegre que saludaba a todos los pájaros.",
			Questions: []models.Question{
				defaultQuestion("¿Dónde vivía la semilla?", []string{"Bajo la tierra", "En una maceta", "En el río"}, 0),
				defaultQuestion("¿En qué se convirtió la semilla?", []string{"En un árbol", "En una rosa", "En un girasol"}, 2),
			},
		},
	},
	models.CategoryNinos: {
		1: {
			Categoria: models.CategoryNinos, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "El faro del puerto",
			Content: "En un puerto pequeño había un faro muy antiguo. Cada noche, su luz giraba para guiar a los barcos entre las rocas. Tomás, el hijo del farero, subía las escaleras de caracol contando los escalones: eran ciento veinte. Una noche de tormenta, la lámpara se apagó y Tomás ayudó a su padre a encenderla de nuevo justo a tiempo para que el pesquero entrara a salvo.",
			Questions: []models.Question{
				defaultQuestion("¿Cuántos escalones tenía el faro?", []string{"Cien", "Ciento veinte", "Doscientos"}, 1),
				defaultQuestion("¿Qué pasó la noche de tormenta?", []string{"Se hundió un barco", "Se apagó la lámpara", "Se cerró el puerto"}, 1),
				defaultQuestion("¿Quién ayudó a encender la lámpara?", []string{"Tomás", "El capitán", "Un marinero"}, 0),
			},
		},
		2: {
			Categoria: models.CategoryNinos, Tema: 2, Idioma: models.DefaultLanguage,
			Title:   "Las abejas arquitectas",
			Content: "Las abejas construyen panales con celdas de seis lados. Esa forma, el hexágono, les permite guardar la mayor cantidad de miel usando la menor cantidad de cera. Los matemáticos tardaron siglos en demostrar lo que las abejas parecían saber desde siempre: ninguna otra figura divide el plano gastando menos material.",
			Questions: []models.Question{
				defaultQuestion("¿Cuántos lados tienen las celdas del panal?", []string{"Cuatro", "Cinco", "Seis"}, 2),
				defaultQuestion("¿Qué ventaja tiene el hexágono?", []string{"Es más bonito", "Usa menos cera", "Es más resistente al agua"}, 1),
			},
		},
	},
	models.CategoryAdolescentes: {
		1: {
			Categoria: models.CategoryAdolescentes, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "El mapa de las corrientes",
			Content: "Antes de los satélites, los navegantes dependían de mapas de corrientes marinas elaborados durante generaciones. Benjamin Franklin publicó en 1770 una de las primeras cartas de la corriente del Golfo, basada en las observaciones de los capitanes balleneros. Los barcos correo que ignoraban la carta tardaban semanas más en cruzar el Atlántico, navegando contra un río invisible dentro del océano.",
			Questions: []models.Question{
				defaultQuestion("¿Quién publicó una de las primeras cartas de la corriente del Golfo?", []string{"James Cook", "Benjamin Franklin", "Un capitán ballenero"}, 1),
				defaultQuestion("¿Qué les ocurría a los barcos que ignoraban la carta?", []string{"Se perdían", "Tardaban semanas más", "Naufragaban"}, 1),
				defaultQuestion("¿En qué se basó la carta?", []string{"En cálculos astronómicos", "En observaciones de balleneros", "En mediciones con boyas"}, 1),
			},
		},
	},
	models.CategoryUniversitarios: {
		1: {
			Categoria: models.CategoryUniversitarios, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "La memoria de trabajo",
			Content: "La memoria de trabajo es el sistema que mantiene y manipula información durante tareas complejas como la comprensión lectora. Su capacidad es limitada: la mayoría de las personas retiene entre cinco y nueve elementos simultáneos. Los lectores expertos compensan esa limitación agrupando palabras en unidades de significado mayores, lo que explica por qué la velocidad de lectura puede entrenarse sin sacrificar comprensión.",
			Questions: []models.Question{
				defaultQuestion("¿Cuántos elementos retiene la mayoría de las personas?", []string{"Entre tres y cinco", "Entre cinco y nueve", "Más de diez"}, 1),
				defaultQuestion("¿Cómo compensan los lectores expertos la capacidad limitada?", []string{"Leyendo más despacio", "Agrupando palabras en unidades de significado", "Releyendo cada frase"}, 1),
			},
		},
	},
	models.CategoryProfesionales: {
		1: {
			Categoria: models.CategoryProfesionales, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "Decisiones bajo presión",
			Content: "Los estudios sobre toma de decisiones muestran que bajo presión temporal los profesionales tienden a reducir la cantidad de alternativas consideradas, no la calidad del análisis de cada una. Esta estrategia, llamada satisficing, produce decisiones aceptables con menos información. El riesgo aparece cuando la primera alternativa aceptable se adopta sin comprobar supuestos básicos, algo que el entrenamiento deliberado puede corregir.",
			Questions: []models.Question{
				defaultQuestion("¿Qué reducen los profesionales bajo presión temporal?", []string{"La calidad del análisis", "La cantidad de alternativas", "El tiempo de descanso"}, 1),
				defaultQuestion("¿Cómo se llama la estrategia descrita?", []string{"Satisficing", "Brainstorming", "Benchmarking"}, 0),
			},
		},
	},
	models.CategoryAdultoMayor: {
		1: {
			Categoria: models.CategoryAdultoMayor, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "El jardín de la memoria",
			Content: "Cuidar un jardín ejercita la memoria de maneras sorprendentes. Recordar qué se plantó en cada cantero, cuándo toca regar y qué plantas prefieren sombra mantiene activas las mismas redes cerebrales que usamos para planificar y recordar citas. Varios estudios asocian la jardinería regular con mejor memoria episódica en personas mayores de sesenta y cinco años.",
			Questions: []models.Question{
				defaultQuestion("¿Qué tipo de memoria se asocia con la jardinería regular?", []string{"Memoria episódica", "Memoria muscular", "Memoria fotográfica"}, 0),
				defaultQuestion("¿A partir de qué edad se observó la asociación?", []string{"Cincuenta años", "Sesenta y cinco años", "Ochenta años"}, 1),
			},
		},
	},
}

// defaultRazonamiento holds the built-in reasoning quizzes.
var defaultRazonamiento = map[models.Category]map[int]models.ContentRecord{
	models.CategoryNinos: {
		1: {
			Categoria: models.CategoryNinos, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "Series y patrones",
			Content: "Observa cada serie y elige el elemento que la continúa.",
			Questions: []models.Question{
				defaultQuestion("2, 4, 6, 8, ...", []string{"9", "10", "12"}, 1),
				defaultQuestion("lunes, miércoles, viernes, ...", []string{"sábado", "domingo", "martes"}, 1),
				defaultQuestion("A, C, E, G, ...", []string{"H", "I", "J"}, 1),
			},
		},
	},
	models.CategoryAdolescentes: {
		1: {
			Categoria: models.CategoryAdolescentes, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "Analogías",
			Content: "Completa cada analogía con la opción correcta.",
			Questions: []models.Question{
				defaultQuestion("Libro es a leer como cuchara es a...", []string{"cocinar", "comer", "servir"}, 1),
				defaultQuestion("Médico es a hospital como maestro es a...", []string{"escuela", "libro", "alumno"}, 0),
			},
		},
	},
	models.CategoryUniversitarios: {
		1: {
			Categoria: models.CategoryUniversitarios, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "Lógica proposicional",
			Content: "Evalúa cada argumento y decide si la conclusión se sigue de las premisas.",
			Questions: []models.Question{
				defaultQuestion("Todos los A son B. Algunos B son C. ¿Se sigue que algunos A son C?", []string{"Sí", "No"}, 1),
				defaultQuestion("Si llueve, la calle se moja. La calle está mojada. ¿Se sigue que llovió?", []string{"Sí", "No"}, 1),
			},
		},
	},
}

// defaultCerebral holds the built-in cerebral exercises. The original system
// omitted this tier for cerebral content; the resolver here applies the same
// three-tier fallback to all three content families.
var defaultCerebral = map[models.Category]map[int]models.CerebralExercise{
	models.CategoryNinos: {
		1: {
			Categoria: models.CategoryNinos, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "Colores y palabras",
			Content: "Di el color de la tinta, no la palabra escrita.",
			Data: models.ExerciseData{
				Type: models.ExerciseStroop,
				Stroop: &models.StroopData{
					Instruction:   "¿De qué color está escrita la palabra?",
					StroopWord:    "ROJO",
					StroopColor:   "azul",
					StroopOptions: []string{"rojo", "azul", "verde", "amarillo"},
					CorrectAnswer: "azul",
				},
			},
		},
	},
	models.CategoryAdolescentes: {
		1: {
			Categoria: models.CategoryAdolescentes, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "La bailarina",
			Content: "Observa la silueta y decide en qué sentido gira.",
			Data: models.ExerciseData{
				Type: models.ExerciseBailarina,
				Bailarina: &models.BailarinaData{
					Instruction: "¿Hacia dónde gira la bailarina?",
					AnswerOptions: []models.AnswerOption{
						{ID: "a", Label: "Sentido horario", Value: "horario", Position: "left"},
						{ID: "b", Label: "Sentido antihorario", Value: "antihorario", Position: "right"},
					},
					CorrectAnswer: "horario",
				},
			},
		},
	},
	models.CategoryUniversitarios: {
		1: {
			Categoria: models.CategoryUniversitarios, Tema: 1, Idioma: models.DefaultLanguage,
			Title:   "Secuencia numérica",
			Content: "Memoriza la secuencia y complétala.",
			Data: models.ExerciseData{
				Type: models.ExerciseSecuencia,
				Secuencia: &models.SecuenciaData{
					Instruction:   "¿Qué número continúa la secuencia?",
					Sequence:      []string{"1", "1", "2", "3", "5", "8"},
					Options:       []string{"11", "13", "15"},
					CorrectAnswer: "13",
				},
			},
		},
	},
}

// defaultVelocidad holds per-category flashing-word exercise defaults used
// when no admin-saved definition exists.
var defaultVelocidad = map[models.Category]models.VelocidadEjercicio{
	models.CategoryNinos: {
		Categoria:              models.CategoryNinos,
		TiempoAnimacionInicial: 3000,
		VelocidadAnimacion:     300,
		Niveles: []models.VelocidadNivel{
			{Nivel: 1, Patron: "1x1", Velocidad: 60, Palabras: []string{"sol", "mar", "pan", "luz"}, TipoPregunta: "ultima_palabra"},
			{Nivel: 2, Patron: "2x1", Velocidad: 90, Palabras: []string{"casa", "perro", "árbol", "nube", "flor"}, TipoPregunta: "ultima_palabra"},
		},
	},
	models.CategoryUniversitarios: {
		Categoria:              models.CategoryUniversitarios,
		TiempoAnimacionInicial: 2000,
		VelocidadAnimacion:     400,
		Niveles: []models.VelocidadNivel{
			{Nivel: 1, Patron: "2x2", Velocidad: 150, Palabras: []string{"análisis", "síntesis", "hipótesis", "variable", "método"}, TipoPregunta: "ultima_palabra"},
			{Nivel: 2, Patron: "3x3", Velocidad: 220, Palabras: []string{"evidencia", "criterio", "inferencia", "premisa", "conclusión", "argumento"}, TipoPregunta: "ultima_palabra"},
		},
	},
}

// DefaultReading returns the built-in reading record for (categoria, tema), or nil.
func DefaultReading(categoria models.Category, tema int) *models.ContentRecord {
	return lookupDefault(defaultReadings, categoria, tema, models.ContentReading)
}

// DefaultRazonamiento returns the built-in reasoning record for (categoria, tema), or nil.
func DefaultRazonamiento(categoria models.Category, tema int) *models.ContentRecord {
	return lookupDefault(defaultRazonamiento, categoria, tema, models.ContentRazonamiento)
}

// DefaultCerebral returns the built-in cerebral exercise for (categoria, tema), or nil.
func DefaultCerebral(categoria models.Category, tema int) *models.CerebralExercise {
	themes, ok := defaultCerebral[categoria]
	if !ok {
		return nil
	}
	record, ok := themes[tema]
	if !ok {
		return nil
	}
	copied := record
	return &copied
}

// DefaultVelocidad returns the built-in flashing-word exercise for a
// category, or nil. The result is a deep copy: callers synthesise answer
// options into the levels, which must never reach the shared table.
func DefaultVelocidad(categoria models.Category) *models.VelocidadEjercicio {
	record, ok := defaultVelocidad[categoria]
	if !ok {
		return nil
	}
	copied := record
	copied.Niveles = make([]models.VelocidadNivel, len(record.Niveles))
	for i, nivel := range record.Niveles {
		nivel.Palabras = append([]string(nil), nivel.Palabras...)
		nivel.Opciones = append([]string(nil), nivel.Opciones...)
		copied.Niveles[i] = nivel
	}
	return &copied
}

func lookupDefault(table map[models.Category]map[int]models.ContentRecord, categoria models.Category, tema int, ct models.ContentType) *models.ContentRecord {
	themes, ok := table[categoria]
	if !ok {
		return nil
	}
	record, ok := themes[tema]
	if !ok {
		return nil
	}
	copied := record
	copied.Type = ct
	return &copied
}

// defaultThemesFor enumerates the built-in themes for one content family.
func defaultThemesFor(ct models.ContentType, categoria models.Category) []models.Theme {
	var themes []models.Theme
	switch ct {
	case models.ContentReading:
		for tema, record := range defaultReadings[categoria] {
			themes = append(themes, models.Theme{Tema: tema, Title: record.Title})
		}
	case models.ContentRazonamiento:
		for tema, record := range defaultRazonamiento[categoria] {
			themes = append(themes, models.Theme{Tema: tema, Title: record.Title})
		}
	case models.ContentCerebral:
		for tema, record := range defaultCerebral[categoria] {
			themes = append(themes, models.Theme{Tema: tema, Title: record.Title})
		}
	}
	return themes
}
