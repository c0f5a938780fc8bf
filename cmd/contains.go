package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/arcgeom/internal/arc"
	"github.com/spf13/cobra"
)

var containsCmd = &cobra.Command{
	Use:   "contains X,Y [X,Y ...]",
	Short: "Hit-test points against an arc",
	Long: `Report whether each point lies inside the arc.

A point is inside when it is inside the outer ellipse and on the swept
side of the chord joining the two boundary points. For unfilled arcs it
must also lie outside the inner ellipse (in the stroke ring).

Examples:
  # Bottom half of a circle
  arcgeom contains --angle1 0 --angle2 3.14159 --wedge 50,90 50,10

  # Stroke ring of the top half
  arcgeom contains --angle1 3.14159 --angle2 6.28318 --fill=false --strokewidth 2 50,0 50,50`,
	Args: cobra.MinimumNArgs(1),
	RunE: runContains,
}

func init() {
	rootCmd.AddCommand(containsCmd)
	addArcFlags(containsCmd)
}

func runContains(cmd *cobra.Command, args []string) error {
	points := make([]arc.Point, 0, len(args))
	for _, s := range args {
		p, err := parsePoint(s)
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	a, _, err := arcFromFlags()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Point\tOuter\tSide\tSector\tInner\tContains\n")
	fmt.Fprintf(w, "  ─────\t─────\t────\t──────\t─────\t────────\n")
	for _, p := range points {
		inner := "-"
		if !a.Style().Fill {
			inner = yesNo(a.InsideInnerEllipse(p.X, p.Y))
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			p,
			yesNo(a.InsideOuterEllipse(p.X, p.Y)),
			a.Side(p.X, p.Y),
			yesNo(a.InsideSector(p.X, p.Y)),
			inner,
			yesNo(a.Contains(p.X, p.Y)),
		)
	}
	return w.Flush()
}

// parsePoint parses "x,y"
func parsePoint(s string) (arc.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return arc.Point{}, fmt.Errorf("invalid point %q: expected X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return arc.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return arc.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return arc.Point{X: x, Y: y}, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
