package components

import (
	"strings"

	"github.com/Rorical/RoriRecipe/internal/models"
	"github.com/Rorical/RoriRecipe/ui/styles"
)

func RenderHeader() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render("AI Recipe Generator") + "\n")
	b.WriteString(styles.SubtitleStyle().Render("Get personalized dinner recipes based on your dietary preferences") + "\n\n")
	return b.String()
}

// RenderForm draws the diet choices and the generate button. selected is the
// diet core holds; cursor is the highlighted row.
func RenderForm(selected models.Diet, cursor int, busy bool, loadingDots int, width int) string {
	var b strings.Builder

	b.WriteString(styles.CardTitleStyle().Render("Select Your Dietary Preference") + "\n")
	b.WriteString(styles.SubtitleStyle().UnsetPadding().Render("Choose your dietary restrictions to get a personalized recipe") + "\n\n")

	for i, d := range models.Diets {
		marker := "( )"
		if d == selected {
			marker = "(•)"
		}
		pointer := " "
		if i == cursor {
			pointer = ">"
		}
		b.WriteString(styles.OptionStyle(i == cursor).Render(pointer+" "+marker+" "+d.Label()) + "\n")
		b.WriteString(styles.OptionDescriptionStyle().Render(d.Description()) + "\n")
	}

	b.WriteString(RenderButton(busy, loadingDots))

	return styles.CardStyle(width).Render(b.String()) + "\n"
}

func RenderButton(busy bool, loadingDots int) string {
	label := "Generate Recipe"
	if busy {
		label = "Generating Recipe" + strings.Repeat(".", loadingDots)
	}
	return styles.ButtonStyle(busy).Render(label)
}
