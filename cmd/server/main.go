package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/app-dashboard/internal/config"
	myHTTP "github.com/MKhiriev/app-dashboard/internal/handler/http"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/server"
	"github.com/MKhiriev/app-dashboard/internal/service"
	"github.com/MKhiriev/app-dashboard/internal/store"
	"github.com/MKhiriev/app-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("app-dashboard-server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")
	warnConfigStates(log, cfg.App)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)
	handler := myHTTP.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

// warnConfigStates reports the degraded configuration states once per run.
func warnConfigStates(log *logger.Logger, cfg config.App) {
	if cfg.AdminAccess == config.AdminAccessDisabled {
		log.Warn().Msg("admin password is not configured: add and delete are disabled")
	}
	if cfg.SecretSource == config.SecretGenerated {
		log.Warn().Msg("secret key is not configured: a random one was generated, sessions end on restart")
	}
}
