// Package gameobject provides a factory for 2D game objects. Each object
// pairs a sprite and a collider with a shape that knows its area and
// perimeter.
package gameobject
