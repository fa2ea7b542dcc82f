package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/RoriRecipe/internal/eventbus"
	"github.com/Rorical/RoriRecipe/internal/logger"
	"github.com/Rorical/RoriRecipe/internal/models"
	"github.com/Rorical/RoriRecipe/internal/recipe"
)

// Generator is the part of recipe.Client the service needs
type Generator interface {
	Generate(ctx context.Context, dietType string) (*recipe.Recipe, error)
}

// RecipeService coordinates recipe requests: it holds the selection and the
// request state, runs one HTTP call per submit and publishes every state
// change to the UI.
type RecipeService struct {
	client   Generator
	state    *RecipeState
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
	loopDone chan struct{}

	// publishMu makes "mutate then push" atomic so snapshots reach the UI
	// in the order they were produced
	publishMu sync.Mutex
}

// NewRecipeService creates the service. eb may be nil when nothing listens
// for state updates (one-shot CLI use).
func NewRecipeService(client Generator, diet models.Diet, eb *eventbus.EventBus) *RecipeService {
	ctx, cancel := context.WithCancel(context.Background())
	return &RecipeService{
		client:   client,
		state:    NewRecipeState(diet),
		eventBus: eb,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start pushes the initial state and consumes UI events until Stop
func (rs *RecipeService) Start() {
	rs.publish(rs.state.Snapshot())
	rs.loopDone = make(chan struct{})
	go rs.eventLoop()
}

// Stop cancels in-flight requests started from the event loop and waits for
// them to settle
func (rs *RecipeService) Stop() {
	rs.cancel()
	if rs.loopDone != nil {
		<-rs.loopDone
	}
	rs.inflight.Wait()
}

func (rs *RecipeService) eventLoop() {
	defer close(rs.loopDone)
	for {
		select {
		case <-rs.ctx.Done():
			return
		case event, ok := <-rs.eventBus.UIToCore():
			if !ok {
				return
			}
			rs.handleUIEvent(event)
		}
	}
}

func (rs *RecipeService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SelectDietEvent:
		rs.SelectDiet(e.Diet)
	case eventbus.SubmitRecipeEvent:
		rs.Submit(rs.ctx)
	}
}

// SelectDiet changes the selection. An in-flight request keeps the diet it
// was started with.
func (rs *RecipeService) SelectDiet(d models.Diet) {
	rs.publishMu.Lock()
	defer rs.publishMu.Unlock()
	rs.publish(rs.state.SelectDiet(d))
}

// Submit enters Pending, clearing any previous result or error, and sends
// the request on its own goroutine. It returns the request's sequence token.
// Submitting again before completion starts an independent request; only
// the latest one may change the visible state.
func (rs *RecipeService) Submit(ctx context.Context) uint64 {
	rs.publishMu.Lock()
	seq, snap := rs.state.Begin()
	rs.publish(snap)
	rs.publishMu.Unlock()

	diet := snap.Diet
	rs.inflight.Add(1)
	go func() {
		defer rs.inflight.Done()
		rs.run(ctx, seq, diet)
	}()
	return seq
}

func (rs *RecipeService) run(ctx context.Context, seq uint64, diet models.Diet) {
	wire := diet.WireValue()
	fields := []zap.Field{zap.Uint64("seq", seq), zap.Stringer("diet", diet), zap.String("diet_type", wire)}
	logger.Info("requesting recipe", fields...)

	res, err := rs.client.Generate(ctx, wire)

	rs.publishMu.Lock()
	defer rs.publishMu.Unlock()

	var (
		snap    models.Snapshot
		applied bool
	)
	if err != nil {
		snap, applied = rs.state.Fail(seq, recipe.Message(err))
		fields = append(fields, zap.Error(err), zap.Int("status", recipe.StatusCode(err)))
	} else {
		snap, applied = rs.state.Succeed(seq, models.RecipeResult{DietType: res.DietType, Recipe: res.Recipe})
	}

	if !applied {
		logger.Debug("discarding superseded recipe response", append(fields, zap.Uint64("latest_seq", snap.Seq))...)
		return
	}
	if err != nil {
		logger.Warn("recipe request failed", fields...)
	} else {
		logger.Info("recipe received", fields...)
	}
	rs.publish(snap)
}

// Snapshot returns the current state
func (rs *RecipeService) Snapshot() models.Snapshot {
	return rs.state.Snapshot()
}

// Wait blocks until every submitted request has completed
func (rs *RecipeService) Wait() {
	rs.inflight.Wait()
}

func (rs *RecipeService) publish(snap models.Snapshot) {
	if rs.eventBus == nil {
		return
	}
	if err := rs.eventBus.SendToUI(eventbus.StateUpdateEvent{Snapshot: snap}); err != nil {
		logger.Error("failed to push state to UI", zap.Error(err), zap.Stringer("state", snap.State))
	}
}
