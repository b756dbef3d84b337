package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: indigo primary on a dark slate background.
var (
	Primary   = lipgloss.Color("#4F46E5") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// areaPalette colors areas by catalog position and cycles when there are
// more areas than colors.
var areaPalette = []color.Color{
	lipgloss.Color("#60A5FA"),
	lipgloss.Color("#F43F5E"),
	lipgloss.Color("#F59E0B"),
	lipgloss.Color("#A855F7"),
	lipgloss.Color("#22C55E"),
	lipgloss.Color("#10B981"),
	lipgloss.Color("#F97316"),
	lipgloss.Color("#0EA5E9"),
}

// AreaColor returns the color for the i-th catalog area.
func AreaColor(i int) color.Color {
	if i < 0 {
		return TextDim
	}
	return areaPalette[i%len(areaPalette)]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Emphasis = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(TextDim)
)
