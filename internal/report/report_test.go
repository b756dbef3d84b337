package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/result"
)

func sampleRecord(weights result.Weights) *result.Record {
	return result.New(result.Input{
		At:    time.Date(2026, 8, 1, 10, 30, 0, 0, time.Local),
		Tally: map[catalog.Area]int{catalog.AreaSalud: 2, catalog.AreaArte: 1},
		TestNorm: map[catalog.Area]float64{
			catalog.AreaSalud: 1.0, catalog.AreaArte: 0.33,
		},
		GameAvg: map[catalog.Area]float64{catalog.AreaSalud: 0, catalog.AreaArte: 0},
		Blended: map[catalog.Area]float64{
			catalog.AreaSalud: 1.0, catalog.AreaArte: 0.33,
		},
		Weights:    weights,
		Ranking:    []catalog.Area{catalog.AreaSalud, catalog.AreaArte},
		Profession: "Enfermería",
		Favorites:  []string{"Enfermería"},
	})
}

func TestRender(t *testing.T) {
	rec := sampleRecord(result.Weights{Test: 1})
	out := ansi.Strip(Render(rec, catalog.Default().Areas(), 60))

	assert.Contains(t, out, "Fecha: 2026-08-01 10:30:00")
	assert.Contains(t, out, "Área principal: Salud")
	assert.Contains(t, out, "Profesión sugerida: Enfermería")
	assert.Contains(t, out, "1. Salud")
	assert.Contains(t, out, "2. Arte y Diseño")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "33%")
	assert.Contains(t, out, "solo del Test")
	assert.NotContains(t, out, "Tecnología", "areas without scores are skipped")
}

func TestWeightsLine(t *testing.T) {
	assert.Equal(t, "Mezcla 70% Test + 30% Juegos (promedios).",
		WeightsLine(sampleRecord(result.Weights{Test: 0.7, Games: 0.3})))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecord(result.Weights{Test: 1})))

	assert.Contains(t, buf.String(), "\n  \"timestamp\"")
	assert.Contains(t, buf.String(), "Enfermería")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "Salud", m["area"])
	assert.Equal(t, []any{"Salud", "Arte y Diseño"}, m["top3"])
}

func TestExportJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	now := time.Date(2026, 8, 1, 10, 30, 0, 0, time.Local)

	path, err := ExportJSON(dir, sampleRecord(result.Weights{Test: 1}), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resultado_vocacional_2026-08-01_10-30-00.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rec, err := result.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Enfermería", rec.Profession)
}
