package models

import "strings"

type RequestState int

const (
	Idle RequestState = iota
	Pending
	Succeeded
	Failed
)

func (s RequestState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "idle"
}

// RecipeResult is a recipe returned by the service
type RecipeResult struct {
	DietType string
	Recipe   string
}

// Title formats the heading shown above a recipe, e.g. "Your Vegan Recipe"
func (r RecipeResult) Title() string {
	diet := r.DietType
	if diet != "" {
		diet = strings.ToUpper(diet[:1]) + diet[1:]
	}
	return "Your " + diet + " Recipe"
}

// Snapshot is the full request state at one instant. Result is set only in
// Succeeded and Error only in Failed. Seq is the token of the latest issued
// request; completions carrying any other token are ignored.
type Snapshot struct {
	Diet   Diet
	State  RequestState
	Result *RecipeResult
	Error  string
	Seq    uint64
}

func (s Snapshot) Busy() bool {
	return s.State == Pending
}

func (s Snapshot) Select(d Diet) Snapshot {
	s.Diet = d
	return s
}

func (s Snapshot) Begin(seq uint64) Snapshot {
	s.State = Pending
	s.Result = nil
	s.Error = ""
	s.Seq = seq
	return s
}

func (s Snapshot) Succeed(seq uint64, r RecipeResult) Snapshot {
	if seq != s.Seq {
		return s
	}
	s.State = Succeeded
	s.Result = &r
	s.Error = ""
	return s
}

func (s Snapshot) Fail(seq uint64, msg string) Snapshot {
	if seq != s.Seq {
		return s
	}
	s.State = Failed
	s.Result = nil
	s.Error = msg
	return s
}
