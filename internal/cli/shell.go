package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/boundary"
	"github.com/idilsaglam/inventory/internal/ui"
)

// shell frames the boundary's view in a panel for the program.
type shell struct {
	b *boundary.Model
}

func (s shell) Init() tea.Cmd { return s.b.Init() }

func (s shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := s.b.Update(msg)
	return s, cmd
}

func (s shell) View() string { return ui.PanelString(s.b.View()) }
