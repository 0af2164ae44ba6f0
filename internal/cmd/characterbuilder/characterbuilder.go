// Package characterbuilder parses character demo flags and assembles one
// character through the director.
package characterbuilder

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/creational/internal/character"
	"github.com/louisbranch/creational/internal/dice"
	entrypoint "github.com/louisbranch/creational/internal/platform/cmd"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config holds characterbuilder command configuration.
type Config struct {
	Archetype string `env:"CHARACTER_ARCHETYPE" envDefault:"hero"`
	Seed      int64  `env:"DICE_SEED"`
	Format    string `env:"CHARACTER_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Archetype, "archetype", cfg.Archetype, "Character archetype: hero, villain or commoner")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Dice seed (0 draws fresh entropy)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text or yaml")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run assembles a character for the configured archetype and writes it to
// out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.DemoCharacterBuilder, func(context.Context) error {
		format := strings.ToLower(strings.TrimSpace(cfg.Format))
		if format == "" {
			format = formatText
		}
		if format != formatText && format != formatYAML {
			return fmt.Errorf("unsupported format %q", cfg.Format)
		}

		roller, err := dice.NewSeededRand(cfg.Seed)
		if err != nil {
			return fmt.Errorf("dice roller: %w", err)
		}
		builder, err := character.NewArchetypeBuilder(character.ParseArchetype(cfg.Archetype), roller)
		if err != nil {
			return fmt.Errorf("character builder: %w", err)
		}
		c := character.Director{}.Construct(builder)

		if format == formatYAML {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(c); err != nil {
				return fmt.Errorf("encode character: %w", err)
			}
			return enc.Close()
		}
		c.Info(out)
		return nil
	})
}
