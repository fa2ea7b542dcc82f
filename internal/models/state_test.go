package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWireValue(t *testing.T) {
	Convey("Given each diet selection", t, func() {
		Convey("Then no-restriction and vegetarian are sent as vegetarian", func() {
			So(NoRestriction.WireValue(), ShouldEqual, "vegetarian")
			So(Vegetarian.WireValue(), ShouldEqual, "vegetarian")
		})

		Convey("Then vegan is sent as vegan", func() {
			So(Vegan.WireValue(), ShouldEqual, "vegan")
		})
	})
}

func TestParseDiet(t *testing.T) {
	Convey("Given diet names from flags and config", t, func() {
		cases := map[string]Diet{
			"":           NoRestriction,
			"none":       NoRestriction,
			"Vegetarian": Vegetarian,
			" vegan ":    Vegan,
		}
		for in, want := range cases {
			got, err := ParseDiet(in)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		Convey("When the name is unknown, an error is returned", func() {
			_, err := ParseDiet("carnivore")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("String and ParseDiet round-trip for every diet", t, func() {
		for _, d := range Diets {
			got, err := ParseDiet(d.String())
			So(err, ShouldBeNil)
			So(got, ShouldEqual, d)
		}
	})
}

func TestSnapshotTransitions(t *testing.T) {
	Convey("Given a snapshot holding a previous result", t, func() {
		s := Snapshot{Diet: Vegan, State: Succeeded, Result: &RecipeResult{DietType: "vegan", Recipe: "old"}, Seq: 1}

		Convey("When Begin is applied", func() {
			s = s.Begin(2)

			Convey("Then it is pending with nothing to show", func() {
				So(s.State, ShouldEqual, Pending)
				So(s.Busy(), ShouldBeTrue)
				So(s.Result, ShouldBeNil)
				So(s.Error, ShouldBeEmpty)
				So(s.Diet, ShouldEqual, Vegan)
			})

			Convey("And the matching completion succeeds", func() {
				s = s.Succeed(2, RecipeResult{DietType: "vegan", Recipe: "Mix greens..."})
				want := Snapshot{Diet: Vegan, State: Succeeded, Result: &RecipeResult{DietType: "vegan", Recipe: "Mix greens..."}, Seq: 2}
				So(cmp.Diff(want, s), ShouldBeEmpty)
			})

			Convey("And a stale completion is ignored", func() {
				before := s
				s = s.Fail(1, "boom")
				So(cmp.Diff(before, s), ShouldBeEmpty)
				s = s.Succeed(1, RecipeResult{Recipe: "late"})
				So(cmp.Diff(before, s), ShouldBeEmpty)
			})

			Convey("And a failure clears any result", func() {
				s = s.Fail(2, "timeout")
				So(s.State, ShouldEqual, Failed)
				So(s.Error, ShouldEqual, "timeout")
				So(s.Result, ShouldBeNil)
				So(s.Busy(), ShouldBeFalse)
			})
		})

		Convey("When Select is applied while pending", func() {
			s = s.Begin(3).Select(Vegetarian)

			Convey("Then only the diet changes", func() {
				So(s.Diet, ShouldEqual, Vegetarian)
				So(s.State, ShouldEqual, Pending)
				So(s.Result, ShouldBeNil)
				So(s.Error, ShouldBeEmpty)
			})
		})
	})
}

func TestRecipeTitle(t *testing.T) {
	Convey("The recipe heading capitalises the diet type", t, func() {
		So(RecipeResult{DietType: "vegan"}.Title(), ShouldEqual, "Your Vegan Recipe")
		So(RecipeResult{DietType: "vegetarian"}.Title(), ShouldEqual, "Your Vegetarian Recipe")
		So(RecipeResult{}.Title(), ShouldEqual, "Your  Recipe")
	})
}
