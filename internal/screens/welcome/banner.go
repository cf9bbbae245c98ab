package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/codelane/coderoom/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ██████╗ ███████╗██████╗  ██████╗  ██████╗ ███╗   ███╗
 ██╔════╝██╔═══██╗██╔══██╗██╔════╝██╔══██╗██╔═══██╗██╔═══██╗████╗ ████║
 ██║     ██║   ██║██║  ██║█████╗  ██████╔╝██║   ██║██║   ██║██╔████╔██║
 ██║     ██║   ██║██║  ██║██╔══╝  ██╔══██╗██║   ██║██║   ██║██║╚██╔╝██║
 ╚██████╗╚██████╔╝██████╔╝███████╗██║  ██║╚██████╔╝╚██████╔╝██║ ╚═╝ ██║
  ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝`

const bannerCompact = "C O D E R O O M"

// RenderBanner returns the CODEROOM banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 74 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
