// Package npcbuilder parses NPC demo flags and scripts the hero NPC.
package npcbuilder

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/creational/internal/dice"
	"github.com/louisbranch/creational/internal/npc"
	entrypoint "github.com/louisbranch/creational/internal/platform/cmd"
)

// Config holds npcbuilder command configuration.
type Config struct {
	Seed int64 `env:"DICE_SEED"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Dice seed (0 draws fresh entropy)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the hero NPC and writes its attributes to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.DemoNPCBuilder, func(context.Context) error {
		roller, err := dice.NewSeededRand(cfg.Seed)
		if err != nil {
			return fmt.Errorf("dice roller: %w", err)
		}

		builder := npc.NewHeroBuilder()
		if err := (npc.Director{Roller: roller}).CreateHero(builder); err != nil {
			return fmt.Errorf("create hero: %w", err)
		}
		builder.NPC().Info(out)
		return nil
	})
}
