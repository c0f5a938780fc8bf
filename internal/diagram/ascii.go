package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/arcgeom/internal/arc"
)

const (
	hitGlyph     = "█"
	ellipseGlyph = "·"
	emptyGlyph   = " "
	angle1Glyph  = "1"
	angle2Glyph  = "2"
)

// DrawASCIIArc renders the hit-test mask of an arc as text. Cells that
// Contains accepts are solid, cells that are only inside the outer
// ellipse are dotted, and the cells holding the two boundary points are
// marked 1 and 2.
func DrawASCIIArc(a *arc.Arc, cols, rows int) string {
	var sb strings.Builder

	mask := a.Sample(cols, rows)
	c1, r1 := cellOf(mask, a.Angle1Point())
	c2, r2 := cellOf(mask, a.Angle2Point())

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", mask.Cols)))
	for row := 0; row < mask.Rows; row++ {
		sb.WriteString("  │")
		for col := 0; col < mask.Cols; col++ {
			switch {
			case col == c1 && row == r1:
				sb.WriteString(angle1Glyph)
			case col == c2 && row == r2:
				sb.WriteString(angle2Glyph)
			case mask.At(col, row):
				sb.WriteString(hitGlyph)
			default:
				p := mask.CellCenter(col, row)
				if a.InsideOuterEllipse(p.X, p.Y) {
					sb.WriteString(ellipseGlyph)
				} else {
					sb.WriteString(emptyGlyph)
				}
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", mask.Cols)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %s = inside arc   %s = ellipse only\n", hitGlyph, ellipseGlyph))
	sb.WriteString(fmt.Sprintf("  1 = angle1 point %s\n", a.Angle1Point()))
	sb.WriteString(fmt.Sprintf("  2 = angle2 point %s\n", a.Angle2Point()))
	sb.WriteString(fmt.Sprintf("  %d of %d samples inside\n", mask.Count(), mask.Cols*mask.Rows))

	return sb.String()
}

// cellOf finds the grid cell holding p, clamped to the grid
func cellOf(mask *arc.Mask, p arc.Point) (int, int) {
	r := mask.Rect
	if r.Width <= 0 || r.Height <= 0 {
		return 0, 0
	}
	col := int((p.X - r.Left) / r.Width * float64(mask.Cols))
	row := int((p.Y - r.Top) / r.Height * float64(mask.Rows))
	return clamp(col, 0, mask.Cols-1), clamp(row, 0, mask.Rows-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
