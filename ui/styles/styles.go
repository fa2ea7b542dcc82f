package styles

import "github.com/charmbracelet/lipgloss"

const (
	accent     = lipgloss.Color("214")
	muted      = lipgloss.Color("245")
	foreground = lipgloss.Color("252")
	border     = lipgloss.Color("62")
	danger     = lipgloss.Color("203")
	leaf       = lipgloss.Color("114")
)

func contentWidth(width int) int {
	if width <= 0 {
		return 76
	}
	if width > 100 {
		return 96
	}
	return width - 4
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 2)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Padding(0, 2)
}

func CardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(contentWidth(width))
}

func ErrorCardStyle(width int) lipgloss.Style {
	return CardStyle(width).
		BorderForeground(danger).
		Foreground(danger)
}

func CardTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(foreground).
		Bold(true)
}

func OptionStyle(highlighted bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(foreground).
		Padding(0, 1)
	if highlighted {
		s = s.Foreground(leaf).Bold(true)
	}
	return s
}

func OptionDescriptionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		PaddingLeft(7)
}

func ButtonStyle(disabled bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(accent).
		Bold(true).
		Padding(0, 3).
		MarginTop(1)
	if disabled {
		s = s.Background(lipgloss.Color("240")).Foreground(lipgloss.Color("250"))
	}
	return s
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
