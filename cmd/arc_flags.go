package cmd

import (
	"fmt"

	"github.com/alexiusacademia/arcgeom/internal/arc"
	"github.com/spf13/cobra"
)

var (
	// Bounding box
	arcLeft   float64
	arcTop    float64
	arcWidth  float64
	arcHeight float64

	// Sweep angles (radians)
	arcAngle1 float64
	arcAngle2 float64

	// Style
	arcWedge       bool
	arcFill        bool
	arcStrokeWidth float64

	// Definition file, overrides the flags above
	arcFile string
)

// addArcFlags registers the flags describing an arc on cmd
func addArcFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&arcLeft, "left", "l", 0, "Left edge of the bounding box")
	cmd.Flags().Float64VarP(&arcTop, "top", "t", 0, "Top edge of the bounding box")
	cmd.Flags().Float64VarP(&arcWidth, "width", "W", 100, "Width of the bounding box")
	cmd.Flags().Float64VarP(&arcHeight, "height", "H", 100, "Height of the bounding box")

	cmd.Flags().Float64Var(&arcAngle1, "angle1", 0, "Start angle (radians, clockwise from 3 o'clock)")
	cmd.Flags().Float64Var(&arcAngle2, "angle2", 0, "End angle (radians, clockwise from 3 o'clock)")

	cmd.Flags().BoolVar(&arcWedge, "wedge", false, "Draw as a closed pie slice")
	cmd.Flags().BoolVar(&arcFill, "fill", true, "Solid shape; --fill=false hit-tests only the stroke ring")
	cmd.Flags().Float64Var(&arcStrokeWidth, "strokewidth", 1, "Stroke width used when not filled")

	cmd.Flags().StringVarP(&arcFile, "file", "f", "", "Load the arc from a JSON or TOML file")
}

// arcFromFlags builds the arc from --file when given, otherwise from
// the individual flags. It also returns a display name.
func arcFromFlags() (*arc.Arc, string, error) {
	if arcFile != "" {
		f, err := arc.LoadFromFile(arcFile)
		if err != nil {
			return nil, "", fmt.Errorf("loading arc: %w", err)
		}
		return f.Arc(), f.Name, nil
	}

	rect := arc.Rect{Left: arcLeft, Top: arcTop, Width: arcWidth, Height: arcHeight}
	style := arc.Style{Wedge: arcWedge, Fill: arcFill, StrokeWidth: arcStrokeWidth}
	if err := arc.Validate(rect, arcAngle1, arcAngle2, style); err != nil {
		return nil, "", err
	}
	return arc.New(rect, arcAngle1, arcAngle2, style), "", nil
}
