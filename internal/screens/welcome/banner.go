package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ██╗███████╗███╗   ██╗████████╗ █████╗
 ██╔═══██╗██╔══██╗██║██╔════╝████╗  ██║╚══██╔══╝██╔══██╗
 ██║   ██║██████╔╝██║█████╗  ██╔██╗ ██║   ██║   ███████║
 ██║   ██║██╔══██╗██║██╔══╝  ██║╚██╗██║   ██║   ██╔══██║
 ╚██████╔╝██║  ██║██║███████╗██║ ╚████║   ██║   ██║  ██║
  ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "O R I E N T A"

// bannerMinWidth is the narrowest frame that fits bannerArt.
const bannerMinWidth = 58

// RenderBanner returns the ORIENTA banner in the primary color, or a
// spaced-letter fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
