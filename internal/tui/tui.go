package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-work-tracker/internal/adapter"
	"github.com/MKhiriev/go-work-tracker/internal/logger"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// Run starts the terminal UI and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":       NewMenuModel(),
		"login":      NewLoginModel(ctx, t.server),
		"register":   NewRegisterModel(ctx, t.server),
		"entries":    NewEntryListModel(ctx, t.server),
		"form":       NewEntryFormModel(ctx, t.server),
		"statistics": NewStatisticsModel(ctx, t.server),
		"profile":    NewProfileModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
