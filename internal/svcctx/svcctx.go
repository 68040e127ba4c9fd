// Package svcctx provides service context for dependency injection via
// context. It lets the watch handler run the same resolve routine the CLI
// commands use without re-plumbing every dependency.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/tocmark/internal/config"
	"github.com/jackzampolin/tocmark/internal/home"
	"github.com/jackzampolin/tocmark/internal/runstore"
)

// Services holds the core services that flow through context.
type Services struct {
	Logger *slog.Logger
	Config *config.Manager
	Home   *home.Dir
	Runs   *runstore.Store
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// From extracts the full Services struct from context.
// Returns nil if not present.
func From(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := From(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := From(ctx); s != nil {
		return s.Config
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := From(ctx); s != nil {
		return s.Home
	}
	return nil
}

// RunsFrom extracts the run store from context.
func RunsFrom(ctx context.Context) *runstore.Store {
	if s := From(ctx); s != nil {
		return s.Runs
	}
	return nil
}
