package character

import (
	"fmt"
	"io"
	"strings"
)

// Archetype selects a character profile.
type Archetype int

const (
	ArchetypeUnknown Archetype = iota
	ArchetypeHero
	ArchetypeVillain
	ArchetypeCommoner
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeHero:
		return "Hero"
	case ArchetypeVillain:
		return "Villain"
	case ArchetypeCommoner:
		return "Commoner"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the archetype by name.
func (a Archetype) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseArchetype maps a case-insensitive name to an Archetype.
func ParseArchetype(name string) Archetype {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hero":
		return ArchetypeHero
	case "villain":
		return ArchetypeVillain
	case "commoner", "villager":
		return ArchetypeCommoner
	default:
		return ArchetypeUnknown
	}
}

// Character is the product assembled by a Builder.
type Character struct {
	Name         string    `yaml:"name"`
	Archetype    Archetype `yaml:"archetype"`
	Health       int       `yaml:"health"`
	Armor        string    `yaml:"armor"`
	Weapon       string    `yaml:"weapon"`
	Magic        string    `yaml:"magic"`
	Strength     int       `yaml:"strength"`
	Intelligence int       `yaml:"intelligence"`
	Wisdom       int       `yaml:"wisdom"`
	Dexterity    int       `yaml:"dexterity"`
	Constitution int       `yaml:"constitution"`
	Charisma     int       `yaml:"charisma"`
}

// Info writes the attribute dump.
func (c *Character) Info(w io.Writer) {
	fmt.Fprintf(w, "%s %s:\n", c.Archetype, c.Name)
	fmt.Fprintf(w, "Health: %d\n", c.Health)
	fmt.Fprintf(w, "Armor: %s\n", c.Armor)
	fmt.Fprintf(w, "Weapon: %s\n", c.Weapon)
	fmt.Fprintf(w, "Magic: %s\n", c.Magic)
	fmt.Fprintf(w, "STR: %d\n", c.Strength)
	fmt.Fprintf(w, "INT: %d\n", c.Intelligence)
	fmt.Fprintf(w, "WIS: %d\n", c.Wisdom)
	fmt.Fprintf(w, "DEX: %d\n", c.Dexterity)
	fmt.Fprintf(w, "CON: %d\n", c.Constitution)
	fmt.Fprintf(w, "CHA: %d\n", c.Charisma)
}
