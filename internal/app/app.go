package app

import (
	"errors"

	"github.com/atomicstack/editor-menubar/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	Visibility string
	TitleBar   string
	Mnemonics  bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(ui.Params{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Visibility: cfg.Visibility,
		TitleBar:   cfg.TitleBar,
		Mnemonics:  cfg.Mnemonics,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
