package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/app-dashboard/internal/adapter"
	"github.com/MKhiriev/app-dashboard/internal/client"
	"github.com/MKhiriev/app-dashboard/internal/config"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/tui"
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

	log := logger.NewClientLogger("app-dashboard-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	dashboardAdapter, err := adapter.NewHTTPDashboardAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create dashboard adapter")
	}

	ui, err := tui.New(dashboardAdapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(dashboardAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
