// Package mfclient provides the main entry point for creating Metrifox API clients
package mfclient

import (
	"context"
	"fmt"

	"github.com/metrifox/metrifox-go/internal/client"
	"github.com/metrifox/metrifox-go/internal/config"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// New creates a new Metrifox client. Options left empty in config are taken
// from the environment (seeded once from .env.local or .env), then from the
// built-in defaults. A missing API key is not an error here; every operation
// reports it instead.
func New(ctx context.Context, config *metrifox.Config) (metrifox.Client, error) {
	return newClient(ctx, config, "")
}

// NewWithAPIKey creates a new client with just an API key.
func NewWithAPIKey(ctx context.Context, apiKey string) (metrifox.Client, error) {
	return New(ctx, &metrifox.Config{
		APIKey: apiKey,
	})
}

// NewFromEnv creates a new client configured entirely from the environment.
func NewFromEnv(ctx context.Context) (metrifox.Client, error) {
	return New(ctx, nil)
}

// NewFromFile creates a new client from a YAML, JSON or TOML config file.
// The environment still overrides values from the file.
func NewFromFile(ctx context.Context, path string) (metrifox.Client, error) {
	return newClient(ctx, nil, path)
}

func newClient(ctx context.Context, cfg *metrifox.Config, path string) (metrifox.Client, error) {
	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	config.LoadDotenv()

	resolved, err := config.Resolve(cfg, path)
	if err != nil {
		return nil, err
	}

	if resolved.Debug && resolved.Logger == nil {
		resolved.Logger = metrifox.NewSlogLogger(nil)
	}

	return client.New(resolved), nil
}
