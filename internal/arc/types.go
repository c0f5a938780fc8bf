package arc

import (
	"fmt"
	"math"
)

// Rect is a resolved, absolute bounding box.
// Width and Height are expected to be non-negative.
type Rect struct {
	Left   float64 `json:"left" toml:"left"`
	Top    float64 `json:"top" toml:"top"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Contains reports whether (x, y) lies within the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width && y >= r.Top && y <= r.Top+r.Height
}

// Point represents a 2D coordinate in screen space (y grows downward)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Style holds the drawing attributes the geometry depends on.
type Style struct {
	// Wedge draws the arc as a closed pie slice.
	Wedge bool `json:"wedge" toml:"wedge"`

	// Fill makes the shape solid. An unfilled arc only covers a ring
	// of the stroke's width.
	Fill bool `json:"fill" toml:"fill"`

	// StrokeWidth is only used when Fill is false.
	StrokeWidth float64 `json:"strokewidth" toml:"strokewidth"`
}

// DefaultStyle returns the style an arc gets when nothing is overridden
func DefaultStyle() Style {
	return Style{
		Wedge:       false,
		Fill:        true,
		StrokeWidth: 1,
	}
}

// Side is the position of a point relative to the chord joining the two
// boundary points. Above and Below are labels consumed by the sector
// test; for near-vertical chords they describe the x ordering instead.
type Side int

const (
	On Side = iota
	Above
	Below
)

func (s Side) String() string {
	switch s {
	case On:
		return "on"
	case Above:
		return "above"
	case Below:
		return "below"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ValidationError represents an invalid arc definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validate checks that the rectangle, angles and style are usable.
// The geometry itself never fails; this is for inputs read from users.
func Validate(rect Rect, angle1, angle2 float64, style Style) error {
	values := []struct {
		name string
		v    float64
	}{
		{"left", rect.Left},
		{"top", rect.Top},
		{"width", rect.Width},
		{"height", rect.Height},
		{"angle1", angle1},
		{"angle2", angle2},
		{"strokewidth", style.StrokeWidth},
	}
	for _, val := range values {
		if math.IsNaN(val.v) || math.IsInf(val.v, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be a finite number", val.name)}
		}
	}
	if rect.Width < 0 {
		return &ValidationError{"width must not be negative"}
	}
	if rect.Height < 0 {
		return &ValidationError{"height must not be negative"}
	}
	if style.StrokeWidth < 0 {
		return &ValidationError{"strokewidth must not be negative"}
	}
	return nil
}
