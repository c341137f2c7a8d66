package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds the settings of the client's HTTP transport.
type ClientAdapter struct {
	// HTTPAddress is the dashboard server base URL (e.g. "http://localhost:2390").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and flags, in that order.
func GetClientConfig(args []string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientServerAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var address string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Dashboard server URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
	}, nil
}
