package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/arcgeom/internal/diagram"
	"github.com/spf13/cobra"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Show the derived geometry of an arc",
	Long: `Derive the ellipse parameters and sweep boundary points of an arc.

Boundary points are rounded to 3 decimal places.

Examples:
  # Half circle from 3 o'clock to 9 o'clock
  arcgeom points --width 100 --height 100 --angle1 0 --angle2 3.14159

  # From a definition file
  arcgeom points -f arc.json`,
	RunE: runPoints,
}

func init() {
	rootCmd.AddCommand(pointsCmd)
	addArcFlags(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	a, name, err := arcFromFlags()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     ARC GEOMETRY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if name != "" {
		fmt.Fprintf(out, "  Arc: %s\n\n", name)
	}

	rect := a.Rect()
	style := a.Style()

	fmt.Fprintln(out, "INPUT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Box (left, top):\t%.3f, %.3f\n", rect.Left, rect.Top)
	fmt.Fprintf(w, "  Box (width × height):\t%.3f × %.3f\n", rect.Width, rect.Height)
	fmt.Fprintf(w, "  Angles:\t%.5f → %.5f rad\n", a.Angle1(), a.Angle2())
	fmt.Fprintf(w, "  Wedge:\t%t\n", style.Wedge)
	fmt.Fprintf(w, "  Fill:\t%t\n", style.Fill)
	if !style.Fill {
		fmt.Fprintf(w, "  Stroke width:\t%.3f\n", style.StrokeWidth)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "ELLIPSE:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius x:\t%.3f\n", a.RadiusX())
	fmt.Fprintf(w, "  Radius y:\t%.3f\n", a.RadiusY())
	fmt.Fprintf(w, "  Centre:\t(%.3f, %.3f)\n", a.MiddleX(), a.MiddleY())
	fmt.Fprintf(w, "  Inner oval difference:\t%.3f\n", a.InnerOvalDifference())
	w.Flush()
	fmt.Fprintln(out)

	sweep := "partial"
	if a.FullSweep() {
		sweep = "full ellipse"
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("SWEEP BOUNDARY", []string{
		fmt.Sprintf("angle1 point  %s", a.Angle1Point()),
		fmt.Sprintf("angle2 point  %s", a.Angle2Point()),
		fmt.Sprintf("sweep         %s", sweep),
	}))
	fmt.Fprintln(out)

	return nil
}
