package npc

import (
	"fmt"
	"io"
)

// NPC is the product assembled by a Builder.
type NPC struct {
	Name         string
	Health       int
	Armor        string
	Weapon       string
	Magic        string
	Strength     int
	Intelligence int
	Wisdom       int
	Dexterity    int
	Constitution int
	Charisma     int
}

// Info writes the attribute dump.
func (n *NPC) Info(w io.Writer) {
	fmt.Fprintf(w, "NPC %s:\n", n.Name)
	fmt.Fprintf(w, "Health: %d\n", n.Health)
	fmt.Fprintf(w, "Armor: %s\n", n.Armor)
	fmt.Fprintf(w, "Weapon: %s\n", n.Weapon)
	fmt.Fprintf(w, "Magic: %s\n", n.Magic)
	fmt.Fprintf(w, "STR: %d\n", n.Strength)
	fmt.Fprintf(w, "INT: %d\n", n.Intelligence)
	fmt.Fprintf(w, "WIS: %d\n", n.Wisdom)
	fmt.Fprintf(w, "DEX: %d\n", n.Dexterity)
	fmt.Fprintf(w, "CON: %d\n", n.Constitution)
	fmt.Fprintf(w, "CHA: %d\n", n.Charisma)
}
