package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pible/pkg/app/screens"
	"github.com/kerbaras/pible/pkg/services"
)

type App struct {
	reader    *services.Reader
	exportDir string
}

// NewApp builds the browser over reader. EPUB exports go to exportDir.
func NewApp(reader *services.Reader, exportDir string) *App {
	return &App{reader: reader, exportDir: exportDir}
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := screens.NewRootScreen(ctx, a.reader, a.exportDir)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
