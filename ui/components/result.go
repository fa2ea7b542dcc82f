package components

import (
	"github.com/Rorical/RoriRecipe/internal/models"
	"github.com/Rorical/RoriRecipe/internal/utils"
	"github.com/Rorical/RoriRecipe/ui/styles"
)

// RenderOutcome draws the error card or the recipe card; nothing while idle
// or pending
func RenderOutcome(snap models.Snapshot, width int) string {
	switch {
	case snap.State == models.Failed:
		return RenderError(snap.Error, width)
	case snap.State == models.Succeeded && snap.Result != nil:
		return RenderRecipe(*snap.Result, width)
	}
	return ""
}

func RenderError(msg string, width int) string {
	return styles.ErrorCardStyle(width).Render("Error: "+msg) + "\n"
}

func RenderRecipe(r models.RecipeResult, width int) string {
	body := styles.CardTitleStyle().Render(r.Title()) + "\n\n" + utils.RenderRecipe(r.Recipe)
	return styles.CardStyle(width).Render(body) + "\n"
}
