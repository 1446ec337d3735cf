package behavioral

import (
	"fmt"
	"io"
	"math"
)

// ShapeVisitor implements one case per concrete shape. Adding a new
// shape means touching every visitor; that trade-off is the pattern.
type ShapeVisitor interface {
	VisitCircle(c *Circle)
	VisitSquare(s *Square)
	VisitRectangle(r *Rectangle)
}

// Shape calls back into the visitor with its own concrete type.
type Shape interface {
	Accept(v ShapeVisitor)
}

type Circle struct {
	Radius float64
}

func (c *Circle) Accept(v ShapeVisitor) { v.VisitCircle(c) }

type Square struct {
	Side float64
}

func (s *Square) Accept(v ShapeVisitor) { v.VisitSquare(s) }

type Rectangle struct {
	Width, Height float64
}

func (r *Rectangle) Accept(v ShapeVisitor) { v.VisitRectangle(r) }

// AreaVisitor accumulates the area of every shape it visits.
type AreaVisitor struct {
	Total float64
}

func (v *AreaVisitor) VisitCircle(c *Circle)       { v.Total += math.Pi * c.Radius * c.Radius }
func (v *AreaVisitor) VisitSquare(s *Square)       { v.Total += s.Side * s.Side }
func (v *AreaVisitor) VisitRectangle(r *Rectangle) { v.Total += r.Width * r.Height }

// PrintVisitor writes a description of every shape it visits.
type PrintVisitor struct {
	Out io.Writer
}

func (v *PrintVisitor) VisitCircle(c *Circle) {
	fmt.Fprintf(v.Out, "Circle with radius %.1f\n", c.Radius)
}

func (v *PrintVisitor) VisitSquare(s *Square) {
	fmt.Fprintf(v.Out, "Square with side %.1f\n", s.Side)
}

func (v *PrintVisitor) VisitRectangle(r *Rectangle) {
	fmt.Fprintf(v.Out, "Rectangle %.1f x %.1f\n", r.Width, r.Height)
}

// DemoVisitor double-dispatches two visitors over a mixed shape list.
func DemoVisitor(w io.Writer) error {
	shapes := []Shape{
		&Circle{Radius: 2},
		&Square{Side: 3},
		&Rectangle{Width: 2, Height: 5},
	}

	printer := &PrintVisitor{Out: w}
	area := &AreaVisitor{}
	for _, s := range shapes {
		s.Accept(printer)
		s.Accept(area)
	}

	_, err := fmt.Fprintf(w, "Total area: %.2f\n", area.Total)
	return err
}
