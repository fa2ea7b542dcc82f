package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriRecipe/internal/eventbus"
	"github.com/Rorical/RoriRecipe/internal/models"
)

// HandleKeyMsg handles keyboard input: moving between diets, submitting and
// quitting
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, eb Sender) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		selectDiet(appModel, appModel.Cursor-1, eb)
	case "down", "j":
		selectDiet(appModel, appModel.Cursor+1, eb)
	case "1", "2", "3":
		selectDiet(appModel, int(keyMsg.String()[0]-'1'), eb)
	case "enter", " ":
		if appModel.Snapshot.Busy() {
			return nil
		}
		if err := eb.SendToCore(eventbus.SubmitRecipeEvent{}); err != nil {
			appModel.Status = "Error sending request: " + err.Error()
			return nil
		}
		// Disable the button until core confirms; its next push replaces this
		appModel.Snapshot = appModel.Snapshot.Begin(appModel.Snapshot.Seq)
		appModel.Status = "Generating recipe"
	}
	return nil
}

func selectDiet(appModel *models.AppModel, index int, eb Sender) {
	if index < 0 || index >= len(models.Diets) {
		return
	}
	appModel.Cursor = index
	if err := eb.SendToCore(eventbus.SelectDietEvent{Diet: models.Diets[index]}); err != nil {
		appModel.Status = "Error sending selection: " + err.Error()
	}
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.Snapshot = event.Snapshot

		switch event.Snapshot.State {
		case models.Pending:
			appModel.Status = "Generating recipe"
		case models.Succeeded:
			appModel.Status = "Recipe ready"
		case models.Failed:
			appModel.Status = "Request failed"
		default:
			appModel.Status = "Ready"
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	if appModel.Snapshot.Busy() {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	} else {
		appModel.LoadingDots = 0
	}
	return TickCmd()
}
