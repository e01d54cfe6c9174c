package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xaota/popup-bus/bus"
	"github.com/xaota/popup-bus/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program on the default bus.
func Run(cfg Config) error {
	model := ui.NewModel(bus.Default(), cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
