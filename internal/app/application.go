package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/RoriRecipe/internal/config"
	"github.com/Rorical/RoriRecipe/internal/core"
	"github.com/Rorical/RoriRecipe/internal/dispatcher"
	"github.com/Rorical/RoriRecipe/internal/eventbus"
	"github.com/Rorical/RoriRecipe/internal/logger"
	"github.com/Rorical/RoriRecipe/internal/models"
	"github.com/Rorical/RoriRecipe/internal/recipe"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.RecipeService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

// NewApplication wires the TUI against the recipe service cfg points at
func NewApplication(cfg *config.Config) *Application {
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn("event bus error", zap.String("operation", e.Operation), zap.Error(e.Err))
	})

	disp := dispatcher.NewEventDispatcher(eb)

	baseURL := cfg.GetBaseURL()
	client := recipe.NewClient(baseURL, nil)
	service := core.NewRecipeService(client, cfg.GetDefaultDiet(), eb)

	model := &AppModel{
		appModel:   createInitialAppModel(cfg, service),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}
}

func (app *Application) Start() error {
	logger.Info("starting recipe generator",
		zap.String("profile", app.config.ActiveProfile),
		zap.String("base_url", app.config.GetBaseURL()))

	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.dispatcher.Stop()
	app.service.Stop()
	app.eventBus.Close()
}

func createInitialAppModel(cfg *config.Config, service *core.RecipeService) models.AppModel {
	snap := service.Snapshot()
	cursor := 0
	for i, d := range models.Diets {
		if d == snap.Diet {
			cursor = i
		}
	}
	return models.AppModel{
		Snapshot:    snap,
		Cursor:      cursor,
		Status:      "Ready",
		ServiceURL:  cfg.GetBaseURL(),
		ProfileName: cfg.ActiveProfile,
	}
}
