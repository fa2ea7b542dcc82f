package core

import (
	"sync"

	"github.com/Rorical/RoriRecipe/internal/models"
)

// RecipeState owns the request snapshot and the sequence counter used to
// tag requests. Every mutation goes through a pure models.Snapshot transition.
type RecipeState struct {
	mu      sync.RWMutex
	current models.Snapshot
	lastSeq uint64
}

func NewRecipeState(diet models.Diet) *RecipeState {
	return &RecipeState{
		current: models.Snapshot{Diet: diet, State: models.Idle},
	}
}

func (rs *RecipeState) Snapshot() models.Snapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.current
}

func (rs *RecipeState) Diet() models.Diet {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.current.Diet
}

func (rs *RecipeState) SelectDiet(d models.Diet) models.Snapshot {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.current = rs.current.Select(d)
	return rs.current
}

// Begin issues the next sequence token and enters Pending
func (rs *RecipeState) Begin() (uint64, models.Snapshot) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.lastSeq++
	rs.current = rs.current.Begin(rs.lastSeq)
	return rs.lastSeq, rs.current
}

// Succeed records a result for seq. applied is false when a newer request
// has been issued since.
func (rs *RecipeState) Succeed(seq uint64, r models.RecipeResult) (snap models.Snapshot, applied bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if seq != rs.lastSeq {
		return rs.current, false
	}
	rs.current = rs.current.Succeed(seq, r)
	return rs.current, true
}

// Fail records an error message for seq; see Succeed
func (rs *RecipeState) Fail(seq uint64, msg string) (snap models.Snapshot, applied bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if seq != rs.lastSeq {
		return rs.current, false
	}
	rs.current = rs.current.Fail(seq, msg)
	return rs.current, true
}
