package utils

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderRecipe(t *testing.T) {
	Convey("Given a recipe as the service returns it", t, func() {
		text := "## Chickpea Curry\r\n\r\n\r\n\r\n**Cooking time:** 30 minutes\n" +
			"Servings: 4\n\n" +
			"### Ingredients\n- 1 can `chickpeas`\n* 2 *ripe* tomatoes\n\n" +
			"---\n" +
			"1. Heat the oil.\n2) Add __spices__ and stir.\n"

		got := ansi.Strip(RenderRecipe(text))

		Convey("Then markers are removed and lines are kept", func() {
			So(got, ShouldEqual, "Chickpea Curry\n"+
				"\n"+
				"Cooking time: 30 minutes\n"+
				"Servings: 4\n"+
				"\n"+
				"Ingredients\n"+
				"• 1 can chickpeas\n"+
				"• 2 ripe tomatoes\n"+
				"\n"+
				"\n"+
				"1. Heat the oil.\n"+
				"2. Add spices and stir.")
		})
	})

	Convey("Given only whitespace", t, func() {
		So(RenderRecipe("  \n\n "), ShouldEqual, "")
	})

	Convey("Given plain prose", t, func() {
		So(ansi.Strip(RenderRecipe("Enjoy your meal with 2*3 friends")), ShouldEqual, "Enjoy your meal with 2*3 friends")
	})
}
