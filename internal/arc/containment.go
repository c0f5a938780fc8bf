package arc

import "math"

// verticalThreshold is the |m·x| beyond which the chord is treated as
// vertical and points are compared by x only.
const verticalThreshold = 1_000_000.0

// axisFraction returns (input - middle)² / (radius - difference)².
// A radius that collapses to zero or below only admits the centre
// coordinate itself.
func axisFraction(input, middle, radius, difference float64) float64 {
	r := radius - difference
	d := input - middle
	if r <= 0 {
		if d == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return (d * d) / (r * r)
}

// InsideOuterEllipse reports whether (x, y) lies inside or on the
// ellipse inscribed in the bounding rectangle.
func (a *Arc) InsideOuterEllipse(x, y float64) bool {
	return axisFraction(x, a.middleX, a.radiusX, 0)+axisFraction(y, a.middleY, a.radiusY, 0) <= 1
}

// InsideInnerEllipse reports whether (x, y) lies inside the ellipse
// inset by InnerOvalDifference on both axes.
func (a *Arc) InsideInnerEllipse(x, y float64) bool {
	d := a.innerOvalDifference
	return axisFraction(x, a.middleX, a.radiusX, d)+axisFraction(y, a.middleY, a.radiusY, d) <= 1
}

// slope of the chord through both boundary points
func (a *Arc) slope() float64 {
	p1, p2 := a.angle1Point, a.angle2Point
	return (p2.Y - p1.Y) / (p2.X - p1.X)
}

// intercept of the chord, b = y1 - m·x1
func (a *Arc) intercept(m float64) float64 {
	mx := a.angle1Point.X * m
	if math.IsInf(mx, 0) || math.IsNaN(mx) {
		return a.angle1Point.Y
	}
	return a.angle1Point.Y - mx
}

// Side classifies (x, y) against the chord joining the two boundary
// points. For steep chords the classification compares x coordinates:
// Above when the point is right of the chord, Below when left of it.
func (a *Arc) Side(x, y float64) Side {
	m := a.slope()
	mx := x * m

	if a.angle1Point.X == a.angle2Point.X || math.IsInf(m, 0) || math.Abs(mx) > verticalThreshold {
		return a.verticalSide(x)
	}

	lineY := mx + a.intercept(m)
	switch {
	case lineY == y:
		return On
	case lineY > y:
		return Above
	default:
		return Below
	}
}

func (a *Arc) verticalSide(x float64) Side {
	switch {
	case a.angle1Point.X == x:
		return On
	case a.angle1Point.X < x:
		return Above
	default:
		return Below
	}
}

// InsideSector reports whether (x, y) is on the swept side of the chord.
// The relative x ordering of the two boundary points tells which of the
// two regions cut by the chord the sweep actually covers. Points on the
// chord are outside.
func (a *Arc) InsideSector(x, y float64) bool {
	if a.fullSweep {
		return true
	}

	p1, p2 := a.angle1Point, a.angle2Point
	side := a.Side(x, y)

	if p1.X == p2.X {
		// Vertical chord: starting at the bottom sweeps through the left
		// half, starting at the top sweeps through the right half.
		return (side == Below && p1.Y > p2.Y) || (side == Above && p1.Y < p2.Y)
	}

	return (side == Below && p1.X > p2.X) || (side == Above && p1.X < p2.X)
}

// Contains is the composite hit test: inside the outer ellipse, on the
// swept side of the chord and, for unfilled arcs, outside the inner
// ellipse.
func (a *Arc) Contains(x, y float64) bool {
	inside := a.InsideOuterEllipse(x, y) && a.InsideSector(x, y)

	if inside && !a.style.Fill {
		inside = !a.InsideInnerEllipse(x, y)
	}

	return inside
}
