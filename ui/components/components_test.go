package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rorical/RoriRecipe/internal/models"
)

func TestRenderOutcome(t *testing.T) {
	Convey("Given each request state", t, func() {
		base := models.Snapshot{Diet: models.Vegan}

		Convey("Idle and pending show no card", func() {
			So(RenderOutcome(base, 80), ShouldBeEmpty)
			So(RenderOutcome(base.Begin(1), 80), ShouldBeEmpty)
		})

		Convey("Failed shows only the error", func() {
			out := ansi.Strip(RenderOutcome(base.Begin(1).Fail(1, "timeout"), 80))
			So(out, ShouldContainSubstring, "Error: timeout")
			So(out, ShouldNotContainSubstring, "Recipe")
		})

		Convey("Succeeded shows only the recipe", func() {
			snap := base.Begin(1).Succeed(1, models.RecipeResult{DietType: "vegan", Recipe: "Mix greens..."})
			out := ansi.Strip(RenderOutcome(snap, 80))
			So(out, ShouldContainSubstring, "Your Vegan Recipe")
			So(out, ShouldContainSubstring, "Mix greens...")
			So(out, ShouldNotContainSubstring, "Error:")
		})
	})
}

func TestRenderForm(t *testing.T) {
	Convey("Given the form with vegetarian selected", t, func() {
		Convey("When idle, the button invites a request", func() {
			out := ansi.Strip(RenderForm(models.Vegetarian, 1, false, 0, 80))
			So(out, ShouldContainSubstring, "(•) Vegetarian")
			So(out, ShouldContainSubstring, "( ) Vegan")
			So(out, ShouldContainSubstring, "No meat, but includes dairy and eggs")
			So(out, ShouldContainSubstring, "Generate Recipe")
		})

		Convey("When busy, the button shows progress", func() {
			out := ansi.Strip(RenderForm(models.Vegetarian, 1, true, 3, 80))
			So(out, ShouldContainSubstring, "Generating Recipe...")
		})
	})
}
