package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used by screens so their
// boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for the border (2) and inner padding (4).
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border box at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
