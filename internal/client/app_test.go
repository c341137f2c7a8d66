package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/mock"
	"github.com/MKhiriev/app-dashboard/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	dashboard := mock.NewMockDashboardAdapter(gomock.NewController(t))
	_, err = NewApp(dashboard, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		probeErr error
		uiErr    error
		wantErr  bool
	}{
		{name: "server reachable"},
		{name: "server down still runs ui", probeErr: errors.New("connection refused")},
		{name: "user quit is not an error", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard := mock.NewMockDashboardAdapter(gomock.NewController(t))
			dashboard.EXPECT().GetServerVersion(gomock.Any()).Return("v1.0.0", tt.probeErr)

			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(dashboard, ui, logger.Nop())
			require.NoError(t, err)

			err = app.run(context.Background())

			assert.Equal(t, 1, ui.calls)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
