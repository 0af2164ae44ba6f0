// Package gameobjects parses shape demo flags and runs the game object
// factory over the demo shapes.
package gameobjects

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/creational/internal/gameobject"
	entrypoint "github.com/louisbranch/creational/internal/platform/cmd"
	apperrors "github.com/louisbranch/creational/internal/platform/errors"
	"github.com/louisbranch/creational/internal/platform/i18n/catalog"
)

// Config holds gameobjects command configuration.
type Config struct {
	Locale        string  `env:"LOCALE" envDefault:"en-US"`
	Size          float64 `env:"SHAPE_SIZE" envDefault:"5"`
	RectLength    float64 `env:"RECTANGLE_LENGTH" envDefault:"10"`
	RectHeight    float64 `env:"RECTANGLE_HEIGHT" envDefault:"2"`
	ObroundLength float64 `env:"OBROUND_LENGTH" envDefault:"9"`
	ObroundHeight float64 `env:"OBROUND_HEIGHT" envDefault:"2"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for console and error messages")
	fs.Float64Var(&cfg.Size, "size", cfg.Size, "Circle radius and square/triangle side")
	fs.Float64Var(&cfg.RectLength, "rect-length", cfg.RectLength, "Rectangle length")
	fs.Float64Var(&cfg.RectHeight, "rect-height", cfg.RectHeight, "Rectangle height")
	fs.Float64Var(&cfg.ObroundLength, "obround-length", cfg.ObroundLength, "Obround overall length")
	fs.Float64Var(&cfg.ObroundHeight, "obround-height", cfg.ObroundHeight, "Obround height")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run creates the demo shapes, draws and collides each one on out and
// reports its metrics. A rejected obround is reported on errOut and skipped.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.DemoGameObjects, func(context.Context) error {
		printer := catalog.Default().Printer(cfg.Locale)

		circle := gameobject.Create(gameobject.KindCircle, cfg.Size)
		square := gameobject.Create(gameobject.KindSquare, cfg.Size)
		triangle := gameobject.Create(gameobject.KindTriangle, cfg.Size)
		rectangle, err := gameobject.CreateWithDimensions(gameobject.KindRectangle, cfg.RectLength, cfg.RectHeight)
		if err != nil {
			return err
		}
		obround, err := gameobject.CreateWithDimensions(gameobject.KindObround, cfg.ObroundLength, cfg.ObroundHeight)
		if err != nil {
			fmt.Fprintln(errOut, printer.Sprintf("gameobject.create_failed",
				gameobject.KindObround, apperrors.LocalizedMessage(err, cfg.Locale)))
		}

		shapes := []gameobject.GameObject{circle, triangle, square, rectangle}
		if obround != nil {
			shapes = append(shapes, obround)
		}
		for _, shape := range shapes {
			shape.Draw(out)
			shape.Collide(out)
			fmt.Fprintln(out, printer.Sprintf("gameobject.metrics", shape.Kind(), shape.Area(), shape.Perimeter()))
		}
		return nil
	})
}
