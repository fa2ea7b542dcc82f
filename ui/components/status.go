package components

import (
	"strings"

	"github.com/Rorical/RoriRecipe/ui/styles"
)

// RenderStatus draws the bottom bar; detail is appended after the status
func RenderStatus(status string, loading bool, loadingDots int, detail string, width int) string {
	statusStyle := styles.StatusStyle(width)

	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}
	if detail != "" {
		statusContent += " · " + detail
	}

	return statusStyle.Render(statusContent)
}

func RenderHelp() string {
	return styles.SubtitleStyle().Render("↑/↓ or 1-3 choose • enter generate • q quit")
}
