// Package cmd holds the entrypoint plumbing shared by every demo command.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/creational/internal/platform/config"
	"github.com/louisbranch/creational/internal/platform/otel"
	"github.com/louisbranch/creational/internal/platform/timeouts"
)

// Demo identifiers for command telemetry and CLI naming consistency.
const (
	DemoGUIFactory       = "guifactory"
	DemoDBFactory        = "dbfactory"
	DemoCharacterBuilder = "characterbuilder"
	DemoNPCBuilder       = "npcbuilder"
	DemoGameObjects      = "gameobjects"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing and executes a demo run. Telemetry is
// flushed within timeouts.Shutdown once run returns.
func RunWithTelemetry(ctx context.Context, demo string, run func(context.Context) error) error {
	demo = strings.TrimSpace(demo)
	if demo == "" {
		return fmt.Errorf("demo name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	shutdown, err := otel.Setup(ctx, demo)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", demo, err)
		}
	}()
	return run(ctx)
}
