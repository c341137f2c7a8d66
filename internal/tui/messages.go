package tui

import (
	"github.com/MKhiriev/app-dashboard/models"
)

type listLoadedMsg struct {
	apps []models.App
	err  error
}

type appSavedMsg struct {
	err error
}

type appDeletedMsg struct {
	name string
	err  error
}

type sessionCreatedMsg struct {
	token models.Token
	err   error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
