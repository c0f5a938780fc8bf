package arc

import (
	"math"

	"github.com/alexiusacademia/arcgeom/internal/logging"
)

const (
	fullTurn = 2 * math.Pi

	// angleOffset moves the trigonometric origin onto the toolkit's one.
	angleOffset = math.Pi / 2

	// minInnerOvalDifference is the smallest inset used for the inner
	// ellipse of an unfilled arc, before halving.
	minInnerOvalDifference = 4.0
)

// Arc is an elliptical arc inside a bounding rectangle.
// All derived geometry is computed by New and never changes afterwards,
// so an Arc can be shared freely between goroutines.
type Arc struct {
	rect   Rect
	angle1 float64
	angle2 float64
	style  Style

	radiusX float64
	radiusY float64
	middleX float64
	middleY float64

	angle1Point Point
	angle2Point Point

	innerOvalDifference float64

	// fullSweep is set when the sector test cannot cut anything away
	fullSweep bool
}

// New creates an arc swept from angle1 to angle2 (radians) inside rect.
// Angles are measured clockwise in screen space starting at 3 o'clock.
func New(rect Rect, angle1, angle2 float64, style Style) *Arc {
	a := &Arc{
		rect:   rect,
		angle1: angle1,
		angle2: angle2,
		style:  style,
	}

	a.radiusX = rect.Width / 2
	a.radiusY = rect.Height / 2
	a.middleX = rect.Left + a.radiusX
	a.middleY = rect.Top + a.radiusY

	a.angle1Point = a.AngleToPoint(angle1)
	a.angle2Point = a.AngleToPoint(angle2)

	a.innerOvalDifference = calculateInnerOvalDifference(style.StrokeWidth)

	a.fullSweep = a.angle1Point == a.angle2Point || math.Abs(angle2-angle1) >= fullTurn

	logging.Logger().Debug("arc geometry derived",
		"radius_x", a.radiusX,
		"radius_y", a.radiusY,
		"middle_x", a.middleX,
		"middle_y", a.middleY,
		"angle1_point", a.angle1Point.String(),
		"angle2_point", a.angle2Point.String(),
		"full_sweep", a.fullSweep,
	)

	return a
}

func (a *Arc) Rect() Rect { return a.rect }
func (a *Arc) Angle1() float64 { return a.angle1 }
func (a *Arc) Angle2() float64 { return a.angle2 }
func (a *Arc) Style() Style { return a.style }
func (a *Arc) RadiusX() float64 { return a.radiusX }
func (a *Arc) RadiusY() float64 { return a.radiusY }
func (a *Arc) MiddleX() float64 { return a.middleX }
func (a *Arc) MiddleY() float64 { return a.middleY }
func (a *Arc) Angle1Point() Point { return a.angle1Point }
func (a *Arc) Angle2Point() Point { return a.angle2Point }

// InnerOvalDifference is how far each radius shrinks for the inner
// ellipse of an unfilled arc.
func (a *Arc) InnerOvalDifference() float64 { return a.innerOvalDifference }

// FullSweep reports whether the sweep covers the whole ellipse, either
// because both boundary points coincide or the angles span a full turn.
func (a *Arc) FullSweep() bool { return a.fullSweep }

func calculateInnerOvalDifference(strokeWidth float64) float64 {
	difference := strokeWidth * 2
	if difference < minInnerOvalDifference {
		difference = minInnerOvalDifference
	}
	return difference / 2
}

// NormalizeAngle wraps any angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	n := math.Mod(angle, fullTurn)
	if n < 0 {
		n += fullTurn
	}
	// -tiny + 2π rounds up to exactly 2π
	if n >= fullTurn {
		n = 0
	}
	return n
}

// adjustAngle converts a toolkit angle into the angle the boundary
// formulas expect.
func adjustAngle(angle float64) float64 {
	return NormalizeAngle(angle + angleOffset)
}

// AngleToPoint returns the point where the ray at the given angle from
// the centre meets the ellipse, rounded to 3 decimal places.
func (a *Arc) AngleToPoint(angle float64) Point {
	theta := adjustAngle(angle)
	xMag, yMag := a.boundaryMagnitudes(theta)

	var x, y float64
	if theta >= 0 && theta <= math.Pi {
		x = a.middleX + xMag
	} else {
		x = a.middleX - xMag
	}
	if (theta >= 0 && theta <= math.Pi/2) || (theta >= 3*math.Pi/2 && theta <= fullTurn) {
		y = a.middleY - yMag
	} else {
		y = a.middleY + yMag
	}

	return Point{X: round3(x), Y: round3(y)}
}

// boundaryMagnitudes returns the unsigned offsets from the centre of the
// boundary point for an adjusted angle.
//
//	xMag = rx·ry / sqrt(ry² + rx²/tan²θ)
//	yMag = rx·ry / sqrt(rx² + ry²·tan²θ)
func (a *Arc) boundaryMagnitudes(theta float64) (xMag, yMag float64) {
	rx, ry := a.radiusX, a.radiusY
	if math.IsNaN(theta) {
		return math.NaN(), math.NaN()
	}
	// A flat ellipse has no interior for the ray to cross.
	if rx <= 0 || ry <= 0 {
		return 0, 0
	}

	t := math.Tan(theta)
	switch {
	case t == 0:
		return 0, ry
	case math.IsInf(t, 0):
		return rx, 0
	}

	top := rx * ry
	t2 := t * t
	xMag = top / math.Sqrt(ry*ry+(rx*rx)/t2)
	yMag = top / math.Sqrt(rx*rx+(ry*ry)*t2)
	return xMag, yMag
}

func round3(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		// drop the sign of -0
		return 0
	}
	return r
}
