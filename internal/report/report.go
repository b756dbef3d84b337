// Package report renders a result.Record for the terminal and exports it
// as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/scoring"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// FileLayout is the timestamp format used in exported file names.
const FileLayout = "2006-01-02_15-04-05"

// Render formats rec as a styled block of the given width. Score bars are
// listed in the order of areas; areas missing from rec are skipped.
func Render(rec *result.Record, areas []catalog.Area, width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Perfil de Orientación Vocacional") + "\n")
	b.WriteString(theme.Hint.Render("Fecha: "+rec.Timestamp) + "\n\n")

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	b.WriteString(label.Render("Área principal: ") + value.Render(string(rec.Area)) + "\n")
	b.WriteString(label.Render("Profesión sugerida: ") + value.Render(rec.Profession) + "\n\n")

	b.WriteString(label.Render("Top 3 áreas") + "\n")
	for i, a := range rec.Top3 {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, a)) + "\n")
	}
	b.WriteString("\n")

	labelWidth := 0
	for _, a := range areas {
		labelWidth = max(labelWidth, lipgloss.Width(string(a)))
	}
	for _, a := range areas {
		v, ok := rec.Blended[a]
		if !ok {
			continue
		}
		name := string(a) + strings.Repeat(" ", labelWidth-lipgloss.Width(string(a)))
		bar := components.NewProgressBar(name, scoring.Clamp01(v), true, width)
		b.WriteString(bar.View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(WeightsLine(rec)) + "\n")
	return b.String()
}

// WeightsLine explains which sources took part in the blend.
func WeightsLine(rec *result.Record) string {
	if !rec.UsedGames() {
		return "No jugaste minijuegos; el resultado es solo del Test."
	}
	return fmt.Sprintf("Mezcla %d%% Test + %d%% Juegos (promedios).",
		int(rec.Weights.Test*100+0.5), int(rec.Weights.Games*100+0.5))
}

// WriteJSON writes rec as indented JSON with the record's field names.
func WriteJSON(w io.Writer, rec *result.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// ExportJSON writes rec to a timestamped file in dir and returns its path.
func ExportJSON(dir string, rec *result.Record, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, "resultado_vocacional_"+now.Format(FileLayout)+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := WriteJSON(f, rec); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}
