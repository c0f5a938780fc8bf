package diagram

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/arcgeom/internal/arc"
)

var circle = arc.Rect{Left: 0, Top: 0, Width: 100, Height: 100}

func TestDrawASCIIArcBottomHalf(t *testing.T) {
	a := arc.New(circle, 0, math.Pi, arc.Style{Wedge: true, Fill: true})
	out := DrawASCIIArc(a, 10, 10)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 12)
	assert.Equal(t, "  ┌"+strings.Repeat("─", 10)+"┐", lines[1])

	grid := lines[2:12]
	for row := 0; row < 5; row++ {
		assert.NotContains(t, grid[row], hitGlyph, "row %d", row)
	}
	for row := 6; row < 9; row++ {
		assert.Contains(t, grid[row], hitGlyph, "row %d", row)
	}
	// both boundary points sit on the middle row
	assert.Contains(t, grid[5], angle1Glyph)
	assert.Contains(t, grid[5], angle2Glyph)
	// the ellipse outside the sweep is dotted
	assert.Contains(t, grid[2], ellipseGlyph)

	assert.Contains(t, out, "1 = angle1 point (100.000, 50.000)")
	assert.Contains(t, out, "2 = angle2 point (0.000, 50.000)")
}

func TestDrawASCIIArcRing(t *testing.T) {
	a := arc.New(circle, 0, 0, arc.Style{Fill: false, StrokeWidth: 10})
	out := DrawASCIIArc(a, 21, 21)

	lines := strings.Split(out, "\n")
	centre := []rune(lines[2+10])
	// "  │" prefix is three runes
	assert.NotEqual(t, hitGlyph, string(centre[3+10]))
	assert.Contains(t, out, "samples inside")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("TITLE", []string{"angle1 point  (1.000, 2.000)", "short"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
	assert.Contains(t, lines[1], "TITLE")
}

func TestDrawAgreementChart(t *testing.T) {
	assert.Equal(t, "", DrawAgreementChart(nil, "empty"))

	out := DrawAgreementChart([]float64{1, 0.5, 0.75, 1}, "agreement by start angle")
	assert.Contains(t, out, "agreement by start angle")
	assert.Contains(t, out, "1.00")
}
