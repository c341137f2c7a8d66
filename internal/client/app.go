package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/app-dashboard/internal/adapter"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/tui"
)

const probeTimeout = 3 * time.Second

type App struct {
	adapter adapter.DashboardAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(dashboard adapter.DashboardAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if dashboard == nil || ui == nil {
		return nil, errors.New("client app needs an adapter and a ui")
	}
	return &App{adapter: dashboard, ui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.probe(ctx)

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// probe logs whether the server answers. The UI reports failures itself, so
// an unreachable server does not stop the client.
func (a *App) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	version, err := a.adapter.GetServerVersion(probeCtx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("dashboard server is not reachable")
		return
	}
	a.logger.Info().Str("server_version", version).Msg("connected to dashboard server")
}
