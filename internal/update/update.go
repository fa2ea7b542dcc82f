package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriRecipe/internal/eventbus"
	"github.com/Rorical/RoriRecipe/internal/models"
)

// Sender is the part of the event bus the UI writes to
type Sender interface {
	SendToCore(event eventbus.UIEvent) error
}

func HandleUpdate(appModel *models.AppModel, msg tea.Msg, eb Sender) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(appModel)
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	return nil
}
