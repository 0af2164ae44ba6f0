package gameobject

import (
	"io"
	"math"
)

// GameObject is a drawable, collidable shape.
type GameObject interface {
	Kind() Kind
	Draw(w io.Writer)
	Collide(w io.Writer)
	Area() float64
	Perimeter() float64
}

// Circle is sized by its radius.
type Circle struct {
	parts
	Radius float64
}

func (*Circle) Kind() Kind { return KindCircle }

func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Circumference is the perimeter of the circle.
func (c *Circle) Circumference() float64 { return 2 * math.Pi * c.Radius }

func (c *Circle) Perimeter() float64 { return c.Circumference() }

// Square is sized by its side.
type Square struct {
	parts
	Side float64
}

func (*Square) Kind() Kind { return KindSquare }

func (s *Square) Area() float64 { return s.Side * s.Side }

func (s *Square) Perimeter() float64 { return 4 * s.Side }

// Rectangle is sized by length and height.
type Rectangle struct {
	parts
	Length float64
	Height float64
}

func (*Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Area() float64 { return r.Length * r.Height }

func (r *Rectangle) Perimeter() float64 { return 2 * (r.Length + r.Height) }

// Triangle is equilateral and sized by its side.
type Triangle struct {
	parts
	Side float64
}

func (*Triangle) Kind() Kind { return KindTriangle }

func (t *Triangle) Area() float64 { return math.Sqrt(3) / 4 * t.Side * t.Side }

func (t *Triangle) Perimeter() float64 { return 3 * t.Side }

// Obround is a rectangle capped by two semicircles. Length is the overall
// length including the caps and Height is the cap diameter.
type Obround struct {
	parts
	Length float64
	Height float64
}

func (*Obround) Kind() Kind { return KindObround }

func (o *Obround) Area() float64 {
	r := o.Height / 2
	return math.Pi*r*r + (o.Length-o.Height)*o.Height
}

func (o *Obround) Perimeter() float64 {
	return math.Pi*o.Height + 2*(o.Length-o.Height)
}
