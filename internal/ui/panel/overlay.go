package panel

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose splices the rendered panel over the base view at the panel's
// position. The base is the full-screen render; the overlay replaces the
// cells it covers and leaves everything else untouched, so the panel can
// never be clipped by whatever laid out the content underneath.
func Compose(base, overlay string, at Rect) string {
	if at.Empty() || overlay == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")

	for i, overLine := range overLines {
		row := at.Y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		baseLine := baseLines[row]
		left := ansi.Truncate(baseLine, at.X, "")
		if pad := at.X - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}

		overWidth := ansi.StringWidth(overLine)
		right := ansi.TruncateLeft(baseLine, at.X+overWidth, "")

		baseLines[row] = left + overLine + right
	}

	return strings.Join(baseLines, "\n")
}
