package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/arcgeom/internal/config"
	"github.com/alexiusacademia/arcgeom/internal/logging"
	"github.com/alexiusacademia/arcgeom/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arcgeom",
	Short: "Elliptical arc geometry and hit-testing tool",
	Long: `arcgeom - Elliptical Arc Geometry

A CLI tool for inspecting elliptical arcs and wedges drawn inside an
axis-aligned bounding box.

This tool helps you:
  - Derive the ellipse centre, radii and sweep boundary points
  - Hit-test points against filled arcs and unfilled stroke rings
  - Render hit-test masks as text, plots or raster images
  - Compare the chord-based hit test with an angle-based reference

Angles are in radians, measured clockwise from 3 o'clock.

Environment:
  ARCGEOM_LOG_LEVEL   debug, info, warn or error (default warn)
  ARCGEOM_COLS        default sample columns (default 60)
  ARCGEOM_ROWS        default sample rows (default 30)
  ARCGEOM_OUTPUT_DIR  directory for relative output files (default .)
  ARCGEOM_MASK_SCALE  pixels per sample for raster masks (default 4)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = c

		level := logging.ParseLevel(cfg.LogLevel)
		if verbose {
			level = logging.ParseLevel("debug")
		}
		logging.SetLogger(logging.NewTextLogger(cmd.ErrOrStderr(), level))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   arcgeom v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Elliptical Arc Geometry & Hit Testing                   ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Ellipse centre, radii and sweep boundary points")
		fmt.Fprintln(out, "    • Hit testing for filled arcs, wedges and stroke rings")
		fmt.Fprintln(out, "    • ASCII, plot and raster mask rendering")
		fmt.Fprintln(out, "    • Chord test vs. angular sweep comparison")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'arcgeom --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log derived geometry at debug level")
}
