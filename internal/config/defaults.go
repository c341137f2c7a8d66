package config

import "time"

// Defaults applied before any other source.
const (
	DefaultDashboardTitle = "App Dashboard"
	DefaultHTTPAddress    = "0.0.0.0:2390"
	DefaultTokenIssuer    = "app-dashboard"
	DefaultTokenDuration  = 12 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultVersion        = "dev"

	DefaultClientServerAddress  = "http://localhost:2390"
	DefaultClientRequestTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DashboardTitle: DefaultDashboardTitle,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
			Version:        DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
