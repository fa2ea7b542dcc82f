package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rorical/RoriRecipe/internal/models"
)

func TestLoadConfig(t *testing.T) {
	Convey("Given an empty RORIRECIPE_HOME", t, func() {
		home := t.TempDir()
		t.Setenv("RORIRECIPE_HOME", home)
		t.Setenv("RECIPE_API_URL", "")
		t.Setenv("RORIRECIPE_LOG_FILE", "")

		Convey("When the config is loaded for the first time", func() {
			cfg, err := LoadConfig()
			So(err, ShouldBeNil)

			Convey("Then a default profile is written to disk", func() {
				_, statErr := os.Stat(filepath.Join(home, ".rorirecipe", "config.json"))
				So(statErr, ShouldBeNil)
				So(cfg.ActiveProfile, ShouldEqual, "default")
				So(cfg.ProfileNames(), ShouldResemble, []string{"default"})
			})

			Convey("Then the base URL falls back to localhost:8000", func() {
				So(cfg.GetBaseURL(), ShouldEqual, DefaultBaseURL)
				So(cfg.GetDefaultDiet(), ShouldEqual, models.NoRestriction)
			})

			Convey("Then the log file sits next to the config", func() {
				So(cfg.GetLogPath(), ShouldEqual, filepath.Join(home, ".rorirecipe", "rorirecipe.log"))
			})
		})

		Convey("When a second profile is saved and selected", func() {
			cfg, err := LoadConfig()
			So(err, ShouldBeNil)
			cfg.Profiles["staging"] = Profile{BaseURL: "https://recipes.example.com/", DefaultDiet: "vegan"}
			So(cfg.Use("staging"), ShouldBeNil)
			So(cfg.Save(), ShouldBeNil)

			reloaded, err := LoadConfig()
			So(err, ShouldBeNil)

			Convey("Then it is active after reload, trailing slash trimmed", func() {
				So(reloaded.ActiveProfile, ShouldEqual, "staging")
				So(reloaded.GetBaseURL(), ShouldEqual, "https://recipes.example.com")
				So(reloaded.GetDefaultDiet(), ShouldEqual, models.Vegan)
			})

			Convey("Then RECIPE_API_URL beats the profile", func() {
				t.Setenv("RECIPE_API_URL", "http://env.example.com:9000")
				withEnv, err := LoadConfig()
				So(err, ShouldBeNil)
				So(withEnv.GetBaseURL(), ShouldEqual, "http://env.example.com:9000")

				Convey("And an explicit override beats both", func() {
					withEnv.OverrideBaseURL("http://flag.example.com/")
					So(withEnv.GetBaseURL(), ShouldEqual, "http://flag.example.com")
				})
			})
		})

		Convey("When the active profile is missing from the file", func() {
			cfg := &Config{
				Profiles:      map[string]Profile{"b": {}, "a": {BaseURL: "http://a.example.com"}},
				ActiveProfile: "gone",
			}
			So(cfg.setCurrentProfile(), ShouldBeNil)

			Convey("Then the first profile by name is used", func() {
				So(cfg.ActiveProfile, ShouldEqual, "a")
				So(cfg.GetBaseURL(), ShouldEqual, "http://a.example.com")
			})
		})

		Convey("When Use names an unknown profile", func() {
			cfg, err := LoadConfig()
			So(err, ShouldBeNil)
			So(cfg.Use("nope"), ShouldNotBeNil)
			So(cfg.ActiveProfile, ShouldEqual, "default")
		})
	})
}

func TestValidateBaseURL(t *testing.T) {
	Convey("ValidateBaseURL accepts only absolute http(s) URLs", t, func() {
		So(ValidateBaseURL("http://localhost:8000"), ShouldBeNil)
		So(ValidateBaseURL("https://recipes.example.com/api"), ShouldBeNil)
		So(ValidateBaseURL("localhost:8000"), ShouldNotBeNil)
		So(ValidateBaseURL("ftp://example.com"), ShouldNotBeNil)
		So(ValidateBaseURL("http://"), ShouldNotBeNil)
	})
}
