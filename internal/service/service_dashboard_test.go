package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/app-dashboard/internal/config"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestDashboard_ConfiguredTitle(t *testing.T) {
	svc := NewDashboardService(config.App{DashboardTitle: "Homelab", Version: "1.2.3"}, logger.Nop())

	d := svc.Dashboard(context.Background())

	assert.Equal(t, "Homelab", d.Title)
	assert.Equal(t, "1.2.3", d.Version)
}

func TestDashboard_DefaultTitle(t *testing.T) {
	svc := NewDashboardService(config.App{}, logger.Nop())

	assert.Equal(t, "App Dashboard", svc.Dashboard(context.Background()).Title)
}

func TestGetAppVersion_VersionIsStable(t *testing.T) {
	svc := NewDashboardService(config.App{Version: "0.0.1"}, logger.Nop())

	ctx := context.Background()
	first := svc.GetAppVersion(ctx)
	second := svc.GetAppVersion(ctx)

	assert.Equal(t, "0.0.1", first)
	assert.Equal(t, first, second, "version must not change between calls")
}

func TestNewServices_WiresEverything(t *testing.T) {
	svc := NewServices(&store.Storages{}, config.StructuredConfig{}, logger.Nop())

	assert.NotNil(t, svc.AppService)
	assert.NotNil(t, svc.AdminService)
	assert.NotNil(t, svc.DashboardService)
}
