package models

import (
	"fmt"
	"strings"
)

// Diet is the user's dietary preference as shown on the form
type Diet int

const (
	NoRestriction Diet = iota
	Vegetarian
	Vegan
)

// Diets lists the selectable preferences in display order
var Diets = []Diet{NoRestriction, Vegetarian, Vegan}

// Wire values accepted by the recipe service
const (
	WireVegetarian = "vegetarian"
	WireVegan      = "vegan"
)

func (d Diet) String() string {
	switch d {
	case NoRestriction:
		return "none"
	case Vegetarian:
		return "vegetarian"
	case Vegan:
		return "vegan"
	}
	return fmt.Sprintf("Diet(%d)", int(d))
}

func (d Diet) Label() string {
	switch d {
	case Vegetarian:
		return "Vegetarian"
	case Vegan:
		return "Vegan"
	}
	return "No Restrictions"
}

func (d Diet) Description() string {
	switch d {
	case Vegetarian:
		return "No meat, but includes dairy and eggs"
	case Vegan:
		return "Plant-based only, no animal products"
	}
	return "All ingredients welcome"
}

// WireValue maps the selection onto what the recipe service accepts.
// The service only knows vegetarian and vegan, so NoRestriction is sent as
// vegetarian. This is a product decision; keep it until the service grows a
// third option.
func (d Diet) WireValue() string {
	if d == Vegan {
		return WireVegan
	}
	return WireVegetarian
}

// ParseDiet accepts the names used by flags and config files
func ParseDiet(s string) (Diet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "no-restriction", "no-restrictions":
		return NoRestriction, nil
	case "vegetarian":
		return Vegetarian, nil
	case "vegan":
		return Vegan, nil
	}
	return NoRestriction, fmt.Errorf("unknown diet %q (want none, vegetarian or vegan)", s)
}
