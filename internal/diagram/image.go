package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/arcgeom/internal/arc"
)

// outlineSegments is the number of points used to draw the ellipse
const outlineSegments = 180

var (
	hitColor     = color.RGBA{R: 100, G: 149, B: 237, A: 200}
	chordColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	angle1Color  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	angle2Color  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	innerColor   = color.Gray{Y: 128}
	outlineColor = color.Black
)

// ExportArcDiagram plots an arc to an image file: the outer (and, for
// unfilled arcs, inner) ellipse, the chord between the boundary points
// and the samples accepted by the hit test. The format follows the file
// extension (png, svg, pdf); unknown extensions get .png appended.
//
// The Y axis is inverted so the plot keeps screen orientation.
func ExportArcDiagram(a *arc.Arc, filename string, cols, rows int) error {
	p := plot.New()
	p.Title.Text = "Arc Hit Test"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	rect := a.Rect()

	// Outer ellipse
	outline, err := plotter.NewLine(closedOutline(a.Boundary(outlineSegments)))
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = outlineColor
	p.Add(outline)

	// Inner ellipse of an unfilled arc
	if !a.Style().Fill {
		d := a.InnerOvalDifference()
		inset := arc.New(arc.Rect{
			Left:   rect.Left + d,
			Top:    rect.Top + d,
			Width:  rect.Width - 2*d,
			Height: rect.Height - 2*d,
		}, 0, 0, arc.DefaultStyle())
		if inset.RadiusX() > 0 && inset.RadiusY() > 0 {
			inner, err := plotter.NewLine(closedOutline(inset.Boundary(outlineSegments)))
			if err != nil {
				return err
			}
			inner.LineStyle.Width = vg.Points(1)
			inner.LineStyle.Color = innerColor
			inner.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
			p.Add(inner)
		}
	}

	// Samples accepted by the hit test
	mask := a.Sample(cols, rows)
	var hits plotter.XYs
	for row := 0; row < mask.Rows; row++ {
		for col := 0; col < mask.Cols; col++ {
			if mask.At(col, row) {
				c := mask.CellCenter(col, row)
				hits = append(hits, plotter.XY{X: c.X, Y: c.Y})
			}
		}
	}
	if len(hits) > 0 {
		scatter, err := plotter.NewScatter(hits)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = hitColor
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	// Chord between the boundary points
	p1, p2 := a.Angle1Point(), a.Angle2Point()
	if !a.FullSweep() {
		chord, err := plotter.NewLine(plotter.XYs{{X: p1.X, Y: p1.Y}, {X: p2.X, Y: p2.Y}})
		if err != nil {
			return err
		}
		chord.LineStyle.Width = vg.Points(1.5)
		chord.LineStyle.Color = chordColor
		chord.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(chord)
	}

	// Boundary points
	for _, bp := range []struct {
		pt    arc.Point
		c     color.Color
		label string
	}{
		{p1, angle1Color, fmt.Sprintf("angle1 %s", p1)},
		{p2, angle2Color, fmt.Sprintf("angle2 %s", p2)},
	} {
		s, err := plotter.NewScatter(plotter.XYs{{X: bp.pt.X, Y: bp.pt.Y}})
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = bp.c
		s.GlyphStyle.Radius = vg.Points(5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)

		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: bp.pt.X, Y: bp.pt.Y}},
			Labels: []string{bp.label},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Screen orientation: y grows downward
	margin := 0.05 * maxFloat(rect.Width, rect.Height)
	p.X.Min = rect.Left - margin
	p.X.Max = rect.Left + rect.Width + margin
	p.Y.Min = rect.Top - margin
	p.Y.Max = rect.Top + rect.Height + margin
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}

	width := 6 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func closedOutline(pts []arc.Point) plotter.XYs {
	xys := make(plotter.XYs, 0, len(pts)+1)
	for _, pt := range pts {
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(pts) > 0 {
		xys = append(xys, plotter.XY{X: pts[0].X, Y: pts[0].Y})
	}
	return xys
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
