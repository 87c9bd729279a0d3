package model

// Shape is a diagram shape displaying one element. An element may be drawn
// on several diagrams and so own several shapes, or none.
//
// Fillable shapes (boxes) are colored through their fill; other shapes only
// have a foreground color. An unset color reports false.
type Shape struct {
	ID       string
	Element  string // Owning element id
	Fillable bool

	fill          Color
	hasFill       bool
	foreground    Color
	hasForeground bool
}

// NewShape returns a shape with no colors set.
func NewShape(id, element string, fillable bool) *Shape {
	return &Shape{ID: id, Element: element, Fillable: fillable}
}

// Fill returns the fill color and whether one is set.
func (s *Shape) Fill() (Color, bool) { return s.fill, s.hasFill }

// SetFill sets the fill color.
func (s *Shape) SetFill(c Color) {
	s.fill = c
	s.hasFill = true
}

// Foreground returns the foreground color and whether one is set.
func (s *Shape) Foreground() (Color, bool) { return s.foreground, s.hasForeground }

// SetForeground sets the foreground color.
func (s *Shape) SetForeground(c Color) {
	s.foreground = c
	s.hasForeground = true
}

// Paint writes c to the fill of a fillable shape and to the foreground of
// any other shape.
func (s *Shape) Paint(c Color) {
	if s.Fillable {
		s.SetFill(c)
		return
	}
	s.SetForeground(c)
}
