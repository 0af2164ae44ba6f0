// Package character builds RPG characters with the Builder pattern.
//
// A Builder assembles one Character from an archetype Profile: equipment is
// fixed, and health plus the six ability scores are rolled as
// roll(count, sides) + modifier on an injected dice.Roller. The Director
// drives assembly; it adds no logic of its own.
package character
