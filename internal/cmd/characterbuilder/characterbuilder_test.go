package characterbuilder

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestParseConfigDefaults verifies hero, text and fresh entropy by default.
func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("characterbuilder", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Archetype != "hero" || cfg.Format != "text" || cfg.Seed != 0 {
		t.Fatalf("config = %+v, want hero/text/0", cfg)
	}
}

// TestParseConfigReadsEnvAndFlags verifies env and flags both apply.
func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CREATIONAL_CHARACTER_ARCHETYPE", "villain")
	t.Setenv("CREATIONAL_DICE_SEED", "99")
	cfg, err := ParseConfig(flag.NewFlagSet("characterbuilder", flag.ContinueOnError), []string{"-format", "yaml"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Archetype != "villain" || cfg.Seed != 99 || cfg.Format != "yaml" {
		t.Fatalf("config = %+v, want villain/99/yaml", cfg)
	}
}

// TestParseConfigRejectsBadSeed verifies a non-numeric seed fails.
func TestParseConfigRejectsBadSeed(t *testing.T) {
	t.Setenv("CREATIONAL_DICE_SEED", "lots")
	if _, err := ParseConfig(flag.NewFlagSet("characterbuilder", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected seed parse error")
	}
}

// TestRunText verifies the text dump.
func TestRunText(t *testing.T) {
	t.Setenv("CREATIONAL_OTEL_ENABLED", "false")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Archetype: "hero", Seed: 5}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Hero Link:\n") {
		t.Fatalf("output = %q, want hero dump", out.String())
	}
	if !strings.Contains(out.String(), "Magic: Lantern\n") {
		t.Fatalf("output = %q, want lantern", out.String())
	}
}

// TestRunSameSeedIsReproducible verifies a fixed seed repeats.
func TestRunSameSeedIsReproducible(t *testing.T) {
	t.Setenv("CREATIONAL_OTEL_ENABLED", "false")
	var first, second bytes.Buffer
	cfg := Config{Archetype: "commoner", Seed: 1234}
	if err := Run(context.Background(), cfg, &first); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := Run(context.Background(), cfg, &second); err != nil {
		t.Fatalf("run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("outputs differ:\n%s\n%s", first.String(), second.String())
	}
}

// TestRunYAML verifies the YAML dump decodes.
func TestRunYAML(t *testing.T) {
	t.Setenv("CREATIONAL_OTEL_ENABLED", "false")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Archetype: "villain", Seed: 3, Format: "yaml"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var got struct {
		Name      string `yaml:"name"`
		Archetype string `yaml:"archetype"`
		Strength  int    `yaml:"strength"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if got.Name != "Ganon" || got.Archetype != "Villain" {
		t.Fatalf("character = %+v, want Ganon the Villain", got)
	}
	if got.Strength < 15 || got.Strength > 20 {
		t.Fatalf("strength = %d, want within [15, 20]", got.Strength)
	}
}

// TestRunRejectsUnknownFormat verifies unknown formats fail before output.
func TestRunRejectsUnknownFormat(t *testing.T) {
	t.Setenv("CREATIONAL_OTEL_ENABLED", "false")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Format: "xml"}, &out); err == nil {
		t.Fatal("expected format error")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
