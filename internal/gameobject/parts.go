package gameobject

import (
	"fmt"
	"io"
)

// Sprite renders an object.
type Sprite interface {
	Draw(w io.Writer)
}

// Collider reacts to collisions.
type Collider interface {
	Collide(w io.Writer)
}

// BasicSprite is the default sprite for every shape.
type BasicSprite struct{}

func (BasicSprite) Draw(w io.Writer) {
	fmt.Fprintln(w, "Drawing a basic sprite...")
}

// BasicCollider is the default collider for every shape.
type BasicCollider struct{}

func (BasicCollider) Collide(w io.Writer) {
	fmt.Fprintln(w, "Colliding basic collider...")
}

// parts carries the sprite and collider every shape delegates to.
type parts struct {
	sprite   Sprite
	collider Collider
}

func basicParts() parts {
	return parts{sprite: BasicSprite{}, collider: BasicCollider{}}
}

func (p parts) Draw(w io.Writer)    { p.sprite.Draw(w) }
func (p parts) Collide(w io.Writer) { p.collider.Collide(w) }
