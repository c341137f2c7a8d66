package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/app-dashboard/internal/adapter"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter   adapter.DashboardAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(dashboard adapter.DashboardAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if dashboard == nil {
		return nil, errors.New("dashboard adapter is nil")
	}
	return &TUI{adapter: dashboard, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the dashboard until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.adapter, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Info().Msg("dashboard client closed")
	return nil
}
