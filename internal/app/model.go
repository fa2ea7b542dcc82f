package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriRecipe/internal/update"
	"github.com/Rorical/RoriRecipe/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.dispatcher.GetEventBus())
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder
	s := m.appModel.Snapshot

	b.WriteString(components.RenderHeader())
	b.WriteString(components.RenderForm(s.Diet, m.appModel.Cursor, s.Busy(), m.appModel.LoadingDots, m.appModel.Width))
	b.WriteString(components.RenderOutcome(s, m.appModel.Width))
	b.WriteString(components.RenderHelp())
	b.WriteString("\n")
	detail := m.appModel.ProfileName + " · " + m.appModel.ServiceURL
	b.WriteString(components.RenderStatus(m.appModel.Status, s.Busy(), m.appModel.LoadingDots, detail, m.appModel.Width))

	return b.String()
}
