package character

import "github.com/louisbranch/creational/internal/dice"

// Builder assembles a Character step by step.
type Builder interface {
	// Reset starts over with a fresh, empty character.
	Reset()
	// AssembleAttributes populates every attribute in a fixed sequence.
	AssembleAttributes()
	// Character returns the assembled character, or nil when nothing has
	// been assembled since the last Reset.
	Character() *Character
}

// ProfileBuilder assembles characters from a Profile.
type ProfileBuilder struct {
	profile   Profile
	roller    dice.Roller
	character *Character
	assembled bool
}

// NewBuilder returns a builder for profile that rolls on roller.
func NewBuilder(profile Profile, roller dice.Roller) (*ProfileBuilder, error) {
	if roller == nil {
		return nil, errRollerRequired
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	b := &ProfileBuilder{profile: profile, roller: roller}
	b.Reset()
	return b, nil
}

// NewArchetypeBuilder returns a builder for a built-in archetype profile.
func NewArchetypeBuilder(a Archetype, roller dice.Roller) (*ProfileBuilder, error) {
	return NewBuilder(ProfileFor(a), roller)
}

// NewHeroBuilder returns a builder for the hero profile.
func NewHeroBuilder(roller dice.Roller) (*ProfileBuilder, error) {
	return NewBuilder(HeroProfile, roller)
}

// NewVillainBuilder returns a builder for the villain profile.
func NewVillainBuilder(roller dice.Roller) (*ProfileBuilder, error) {
	return NewBuilder(VillainProfile, roller)
}

// NewCommonerBuilder returns a builder for the commoner profile.
func NewCommonerBuilder(roller dice.Roller) (*ProfileBuilder, error) {
	return NewBuilder(CommonerProfile, roller)
}

// Reset replaces the product with a fresh character. Handles returned before
// the reset keep pointing at the previous character.
func (b *ProfileBuilder) Reset() {
	b.character = &Character{}
	b.assembled = false
}

// AssembleAttributes fills name, health, equipment and the six ability scores
// in that order.
func (b *ProfileBuilder) AssembleAttributes() {
	p := b.profile
	c := b.character
	c.Name = p.Name
	c.Archetype = p.Archetype
	c.Health = dice.Apply(b.roller, p.Health)
	c.Armor = p.Armor
	c.Weapon = p.Weapon
	c.Magic = p.Magic
	c.Strength = dice.Apply(b.roller, p.Strength)
	c.Intelligence = dice.Apply(b.roller, p.Intelligence)
	c.Wisdom = dice.Apply(b.roller, p.Wisdom)
	c.Dexterity = dice.Apply(b.roller, p.Dexterity)
	c.Constitution = dice.Apply(b.roller, p.Constitution)
	c.Charisma = dice.Apply(b.roller, p.Charisma)
	b.assembled = true
}

// Character returns the shared handle to the assembled character.
func (b *ProfileBuilder) Character() *Character {
	if !b.assembled {
		return nil
	}
	return b.character
}

// Director runs assembly on a builder.
type Director struct{}

// Construct assembles one character on b and returns it.
func (Director) Construct(b Builder) *Character {
	b.AssembleAttributes()
	return b.Character()
}
