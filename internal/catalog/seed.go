package catalog

import "fmt"

// Built-in area names.
const (
	AreaTecnologia = Area("Tecnología")
	AreaSalud      = Area("Salud")
	AreaNegocios   = Area("Negocios")
	AreaArte       = Area("Arte y Diseño")
	AreaEducacion  = Area("Educación y Sociales")
	AreaAmbiente   = Area("Ambiente y Agro")
	AreaOficios    = Area("Oficios e Ingeniería")
)

var seedAreas = []AreaEntry{
	{
		Name: AreaTecnologia,
		Professions: []string{
			"Desarrollador/a de Software", "Científico/a de Datos",
			"Especialista en Ciberseguridad", "Desarrollador/a Web", "Administrador/a de Redes",
		},
		Keywords: []string{"program", "código", "software", "datos", "app", "web", "api", "ciberseg", "redes", "automat"},
	},
	{
		Name:        AreaSalud,
		Professions: []string{"Enfermería", "Tecnología Médica", "Nutrición", "Psicología Clínica", "Medicina"},
		Keywords:    []string{"salud", "hospital", "paciente", "enfermer", "medicin", "nutric", "terapia"},
	},
	{
		Name:        AreaNegocios,
		Professions: []string{"Marketing Digital", "Analista de Negocios", "Finanzas", "Comercio Internacional", "Emprendimiento"},
		Keywords:    []string{"marketing", "ventas", "negocio", "empresa", "finanzas", "analista", "comercial"},
	},
	{
		Name:        AreaArte,
		Professions: []string{"Diseño Gráfico", "Diseño UX/UI", "Animación", "Arquitectura", "Fotografía"},
		Keywords:    []string{"diseño", "ux", "ui", "ilustr", "animación", "arquitect", "fotograf"},
	},
	{
		Name:        AreaEducacion,
		Professions: []string{"Docencia", "Trabajo Social", "Psicología Educativa", "Gestión Pública", "Relaciones Internacionales"},
		Keywords:    []string{"educa", "enseñar", "docen", "social", "comunidad", "psicolog"},
	},
	{
		Name:        AreaAmbiente,
		Professions: []string{"Ingeniería Ambiental", "Biología", "Gestión de Recursos Naturales", "Agroindustria", "Forestal"},
		Keywords:    []string{"ambiente", "ecolog", "sosten", "biolog", "campo", "agro", "bosque"},
	},
	{
		Name:        AreaOficios,
		Professions: []string{"Ingeniería Civil", "Electricidad/Electrónica", "Mecánica", "Carpintería", "Topografía"},
		Keywords:    []string{"constru", "mecán", "electric", "solda", "taller", "instalar", "repar", "planos"},
	},
}

var seedQuestions = []Question{
	{Prompt: "¿Qué te entusiasma más hacer?", Options: []Option{
		{"Crear apps o automatizar tareas", AreaTecnologia},
		{"Ayudar a personas en temas de salud", AreaSalud},
		{"Liderar un proyecto o vender una idea", AreaNegocios},
	}},
	{Prompt: "¿Qué actividad te suena más divertida?", Options: []Option{
		{"Diseñar una interfaz o ilustración", AreaArte},
		{"Explicar un tema difícil a alguien", AreaEducacion},
		{"Organizar una feria o campaña", AreaNegocios},
	}},
	{Prompt: "Si hoy tuvieras una tarde libre, preferirías…", Options: []Option{
		{"Explorar hardware o reparar algo", AreaOficios},
		{"Hacer trabajo de campo al aire libre", AreaAmbiente},
		{"Probar una API y unir datos", AreaTecnologia},
	}},
	{Prompt: "¿Qué problema te gustaría resolver?", Options: []Option{
		{"Contaminación y cambio climático", AreaAmbiente},
		{"Acceso a salud y bienestar", AreaSalud},
		{"Experiencias digitales más intuitivas", AreaArte},
	}},
	{Prompt: "En un equipo, sueles…", Options: []Option{
		{"Coordinar tareas y metas", AreaNegocios},
		{"Enseñar/explicar a quien lo necesita", AreaEducacion},
		{"Investigar soluciones técnicas", AreaTecnologia},
	}},
	{Prompt: "Elige la que más te identifica:", Options: []Option{
		{"Manos a la obra: construir/instalar", AreaOficios},
		{"Creatividad visual y narrativa", AreaArte},
		{"Análisis de datos y lógica", AreaTecnologia},
	}},
}

// Users can change these from the favorites screen.
var seedFavorites = []string{"Desarrollador/a de Software", "Diseño UX/UI", "Enfermería"}

// defaultCatalog is built once at init; the seed tables are expected to be valid.
var defaultCatalog = mustNew(seedAreas, seedQuestions, seedFavorites)

// Default returns the built-in catalog. It is immutable and safe to share.
func Default() *Catalog {
	return defaultCatalog
}

func mustNew(areas []AreaEntry, questions []Question, favorites []string) *Catalog {
	c, err := New(areas, questions, favorites)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}
