package character

import (
	"fmt"

	"github.com/louisbranch/creational/internal/dice"
	apperrors "github.com/louisbranch/creational/internal/platform/errors"
)

// Profile is the fixed assembly script for one archetype.
type Profile struct {
	Archetype Archetype
	Name      string
	Armor     string
	Weapon    string
	Magic     string

	Health       dice.DiceSpec
	Strength     dice.DiceSpec
	Intelligence dice.DiceSpec
	Wisdom       dice.DiceSpec
	Dexterity    dice.DiceSpec
	Constitution dice.DiceSpec
	Charisma     dice.DiceSpec
}

// HeroProfile favors physical ability scores.
var HeroProfile = Profile{
	Archetype:    ArchetypeHero,
	Name:         "Link",
	Armor:        "Green Tunic",
	Weapon:       "Fighter Sword",
	Magic:        "Lantern",
	Health:       dice.DiceSpec{Count: 3, Sides: 6, Modifier: 10},
	Strength:     dice.DiceSpec{Count: 1, Sides: 6, Modifier: 12},
	Intelligence: dice.DiceSpec{Count: 2, Sides: 4, Modifier: 8},
	Wisdom:       dice.DiceSpec{Count: 2, Sides: 4, Modifier: 8},
	Dexterity:    dice.DiceSpec{Count: 1, Sides: 6, Modifier: 12},
	Constitution: dice.DiceSpec{Count: 1, Sides: 6, Modifier: 12},
	Charisma:     dice.DiceSpec{Count: 3, Sides: 6},
}

// VillainProfile trades charisma for raw power.
var VillainProfile = Profile{
	Archetype:    ArchetypeVillain,
	Name:         "Ganon",
	Armor:        "Dark Plate",
	Weapon:       "Trident",
	Magic:        "Fire Keese",
	Health:       dice.DiceSpec{Count: 4, Sides: 8, Modifier: 20},
	Strength:     dice.DiceSpec{Count: 1, Sides: 6, Modifier: 14},
	Intelligence: dice.DiceSpec{Count: 2, Sides: 6, Modifier: 8},
	Wisdom:       dice.DiceSpec{Count: 2, Sides: 4, Modifier: 6},
	Dexterity:    dice.DiceSpec{Count: 2, Sides: 4, Modifier: 6},
	Constitution: dice.DiceSpec{Count: 1, Sides: 6, Modifier: 14},
	Charisma:     dice.DiceSpec{Count: 1, Sides: 4, Modifier: 4},
}

// CommonerProfile rolls straight 3d6 for every ability score.
var CommonerProfile = Profile{
	Archetype:    ArchetypeCommoner,
	Name:         "Villager",
	Armor:        "Cloth Shirt",
	Weapon:       "Stick",
	Magic:        "None",
	Health:       dice.DiceSpec{Count: 1, Sides: 4, Modifier: 2},
	Strength:     dice.DiceSpec{Count: 3, Sides: 6},
	Intelligence: dice.DiceSpec{Count: 3, Sides: 6},
	Wisdom:       dice.DiceSpec{Count: 3, Sides: 6},
	Dexterity:    dice.DiceSpec{Count: 3, Sides: 6},
	Constitution: dice.DiceSpec{Count: 3, Sides: 6},
	Charisma:     dice.DiceSpec{Count: 3, Sides: 6},
}

// ProfileFor returns the built-in profile for a. Unknown archetypes get the
// hero profile.
func ProfileFor(a Archetype) Profile {
	switch a {
	case ArchetypeVillain:
		return VillainProfile
	case ArchetypeCommoner:
		return CommonerProfile
	default:
		return HeroProfile
	}
}

// Validate checks that every rolled attribute has a usable dice spec, that
// health cannot roll below 1 and that the character has a name.
func (p Profile) Validate() error {
	if p.Name == "" {
		return apperrors.New(apperrors.CodeCharacterNameRequired, "profile name is required")
	}
	specs := []struct {
		field string
		spec  dice.DiceSpec
	}{
		{"health", p.Health},
		{"strength", p.Strength},
		{"intelligence", p.Intelligence},
		{"wisdom", p.Wisdom},
		{"dexterity", p.Dexterity},
		{"constitution", p.Constitution},
		{"charisma", p.Charisma},
	}
	for _, s := range specs {
		if err := s.spec.Validate(); err != nil {
			return apperrors.WithMetadata(
				apperrors.CodeDiceInvalidSpec,
				fmt.Sprintf("%s %s: %v", p.Name, s.field, err),
				map[string]string{"Spec": s.spec.String()},
			)
		}
	}
	if p.Health.Min() < 1 {
		return apperrors.WithMetadata(
			apperrors.CodeCharacterHealthFloor,
			fmt.Sprintf("%s health %s can roll below 1", p.Name, p.Health),
			map[string]string{"Name": p.Name, "Spec": p.Health.String()},
		)
	}
	return nil
}
