package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingRegex    = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	bulletRegex     = regexp.MustCompile(`^(\s*)[-*•]\s+(.*)$`)
	orderedRegex    = regexp.MustCompile(`^(\s*)(\d+)[.)]\s+(.*)$`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	boldRegex       = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	italicRegex     = regexp.MustCompile(`(^|[^*\w])\*([^*\s][^*]*)\*|(^|[^_\w])_([^_\s][^_]*)_`)
	labelRegex      = regexp.MustCompile(`^([A-Z][A-Za-z /]{1,30}):\s*(.*)$`)
	blankRunRegex   = regexp.MustCompile(`\n{3,}`)
	horizontalRegex = regexp.MustCompile(`^\s*([-*_])(\s*([-*_])){2,}\s*$`)
)

func headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func codeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color("236"))
}

func bulletStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
}

// RenderRecipe styles the light markdown a recipe service typically returns.
// Line breaks are kept as sent; runs of blank lines collapse to one.
func RenderRecipe(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankRunRegex.ReplaceAllString(strings.TrimSpace(text), "\n\n")
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, renderLine(line))
	}
	return strings.Join(out, "\n")
}

func renderLine(line string) string {
	trimmed := strings.TrimRight(line, " \t")

	if horizontalRegex.MatchString(trimmed) {
		return ""
	}
	if m := headingRegex.FindStringSubmatch(trimmed); m != nil {
		return headingStyle().Render(stripInline(m[2]))
	}
	if m := bulletRegex.FindStringSubmatch(trimmed); m != nil {
		return m[1] + bulletStyle().Render("•") + " " + renderInline(m[2])
	}
	if m := orderedRegex.FindStringSubmatch(trimmed); m != nil {
		return m[1] + bulletStyle().Render(m[2]+".") + " " + renderInline(m[3])
	}
	// "Cooking time: 30 minutes" style lines get a bold label
	if m := labelRegex.FindStringSubmatch(trimmed); m != nil {
		rest := renderInline(m[2])
		if rest != "" {
			rest = " " + rest
		}
		return labelStyle().Render(m[1]+":") + rest
	}
	return renderInline(trimmed)
}

// renderInline handles code spans first so their contents are left alone
func renderInline(s string) string {
	parts := inlineCodeRegex.Split(s, -1)
	codes := inlineCodeRegex.FindAllStringSubmatch(s, -1)

	var b strings.Builder
	for i, part := range parts {
		b.WriteString(renderEmphasis(part))
		if i < len(codes) {
			b.WriteString(codeStyle().Render(codes[i][1]))
		}
	}
	return b.String()
}

func renderEmphasis(s string) string {
	s = boldRegex.ReplaceAllStringFunc(s, func(match string) string {
		m := boldRegex.FindStringSubmatch(match)
		inner := m[1]
		if inner == "" {
			inner = m[2]
		}
		return lipgloss.NewStyle().Bold(true).Render(inner)
	})
	return italicRegex.ReplaceAllStringFunc(s, func(match string) string {
		m := italicRegex.FindStringSubmatch(match)
		prefix, inner := m[1], m[2]
		if inner == "" {
			prefix, inner = m[3], m[4]
		}
		return prefix + lipgloss.NewStyle().Italic(true).Render(inner)
	})
}

// stripInline removes emphasis markers, for text that already has a style
func stripInline(s string) string {
	s = boldRegex.ReplaceAllString(s, "$1$2")
	s = inlineCodeRegex.ReplaceAllString(s, "$1")
	return s
}
