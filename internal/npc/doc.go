// Package npc builds non-player characters through per-attribute setters.
//
// Unlike the character package, the builder here has no knowledge of stat
// rules: a Director drives every setter with a fixed script and rolls stats
// on its own Roller.
package npc
