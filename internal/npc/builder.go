package npc

import (
	"errors"

	"github.com/louisbranch/creational/internal/dice"
)

var errRollerRequired = errors.New("dice roller is required")

// Builder sets NPC attributes one at a time.
type Builder interface {
	SetName(name string)
	SetHealth(health int)
	SetArmor(armor string)
	SetWeapon(weapon string)
	SetMagic(magic string)
	SetStrength(strength int)
	SetIntelligence(intelligence int)
	SetWisdom(wisdom int)
	SetDexterity(dexterity int)
	SetConstitution(constitution int)
	SetCharisma(charisma int)

	// NPC hands over the product built so far.
	NPC() *NPC
}

// HeroBuilder accumulates setter calls on a single NPC.
type HeroBuilder struct {
	npc *NPC
}

// NewHeroBuilder returns a builder holding an empty NPC.
func NewHeroBuilder() *HeroBuilder {
	return &HeroBuilder{npc: &NPC{}}
}

func (b *HeroBuilder) SetName(name string)              { b.npc.Name = name }
func (b *HeroBuilder) SetHealth(health int)             { b.npc.Health = health }
func (b *HeroBuilder) SetArmor(armor string)            { b.npc.Armor = armor }
func (b *HeroBuilder) SetWeapon(weapon string)          { b.npc.Weapon = weapon }
func (b *HeroBuilder) SetMagic(magic string)            { b.npc.Magic = magic }
func (b *HeroBuilder) SetStrength(strength int)         { b.npc.Strength = strength }
func (b *HeroBuilder) SetIntelligence(intelligence int) { b.npc.Intelligence = intelligence }
func (b *HeroBuilder) SetWisdom(wisdom int)             { b.npc.Wisdom = wisdom }
func (b *HeroBuilder) SetDexterity(dexterity int)       { b.npc.Dexterity = dexterity }
func (b *HeroBuilder) SetConstitution(constitution int) { b.npc.Constitution = constitution }
func (b *HeroBuilder) SetCharisma(charisma int)         { b.npc.Charisma = charisma }

// NPC returns the built NPC and starts the builder over with an empty one.
// The caller owns the returned value; later setter calls do not touch it.
func (b *HeroBuilder) NPC() *NPC {
	built := b.npc
	b.npc = &NPC{}
	return built
}

// Director scripts setter calls on a Builder.
type Director struct {
	Roller dice.Roller
}

// CreateHero sets every attribute of the hero NPC on b.
func (d Director) CreateHero(b Builder) error {
	if d.Roller == nil {
		return errRollerRequired
	}
	b.SetName("Link")
	b.SetHealth(3)
	b.SetArmor("Green Tunic")
	b.SetWeapon("Fighter Sword")
	b.SetMagic("Lantern")
	b.SetStrength(d.Roller.Roll(9, 2))
	b.SetIntelligence(d.Roller.Roll(6, 3))
	b.SetWisdom(d.Roller.Roll(3, 6))
	b.SetDexterity(d.Roller.Roll(9, 2))
	b.SetConstitution(d.Roller.Roll(9, 2))
	b.SetCharisma(d.Roller.Roll(3, 6))
	return nil
}
