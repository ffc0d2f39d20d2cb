package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequiz/internal/ui/theme"
)

const bannerArt = `
 ██╗      ██████╗ ██╗   ██╗███████╗     ██████╗ ██╗   ██╗██╗███████╗
 ██║     ██╔═══██╗██║   ██║██╔════╝    ██╔═══██╗██║   ██║██║╚══███╔╝
 ██║     ██║   ██║██║   ██║█████╗      ██║   ██║██║   ██║██║  ███╔╝
 ██║     ██║   ██║╚██╗ ██╔╝██╔══╝      ██║▄▄ ██║██║   ██║██║ ███╔╝
 ███████╗╚██████╔╝ ╚████╔╝ ███████╗    ╚██████╔╝╚██████╔╝██║███████╗
 ╚══════╝ ╚═════╝   ╚═══╝  ╚══════╝     ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "L O V E   Q U I Z"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 70

// RenderBanner returns the title banner, falling back to a compact line
// on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
