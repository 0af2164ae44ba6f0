// Package guifactory parses GUI demo flags and draws one widget family.
package guifactory

import (
	"context"
	"flag"
	"io"
	"strings"

	"github.com/louisbranch/creational/internal/gui"
	entrypoint "github.com/louisbranch/creational/internal/platform/cmd"
)

// Config holds guifactory command configuration.
type Config struct {
	Platform string `env:"GUI_PLATFORM"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Platform, "platform", cfg.Platform, "Widget family: windows, linux or macos (default: build tag selection)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolvePlatform resolves the configured platform, falling back to the
// compile-time default when none is set.
func (c Config) resolvePlatform() gui.Platform {
	if strings.TrimSpace(c.Platform) == "" {
		return gui.DefaultPlatform
	}
	return gui.ParsePlatform(c.Platform)
}

// Run draws a button, menu and dialog from the selected family to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.DemoGUIFactory, func(context.Context) error {
		window := gui.NewWindow(gui.NewFactory(cfg.resolvePlatform()))
		window.Draw(out)
		return nil
	})
}
