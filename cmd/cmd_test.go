package cmd

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/arcgeom/internal/arc"
)

// executeCommand runs the root command with args and returns its output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// arcArgs spells out every arc flag, flag values persist between runs
func arcArgs(angle1, angle2 float64, fill bool, strokeWidth float64) []string {
	return []string{
		"--left", "0", "--top", "0", "--width", "100", "--height", "100",
		"--angle1", fmt.Sprint(angle1), "--angle2", fmt.Sprint(angle2),
		"--wedge=true", fmt.Sprintf("--fill=%t", fill), "--strokewidth", fmt.Sprint(strokeWidth),
		"--file", "",
	}
}

func lineWith(out, needle string) string {
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, needle) {
			return strings.TrimSpace(l)
		}
	}
	return ""
}

func TestContainsCommand(t *testing.T) {
	args := append([]string{"contains"}, arcArgs(0, math.Pi, true, 1)...)
	args = append(args, "50,90", "50,10")

	out, err := executeCommand(t, args...)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(lineWith(out, "(50.000, 90.000)"), "yes"), out)
	assert.True(t, strings.HasSuffix(lineWith(out, "(50.000, 10.000)"), "no"), out)
	assert.Contains(t, lineWith(out, "(50.000, 10.000)"), "above")
}

func TestContainsCommandRing(t *testing.T) {
	args := append([]string{"contains"}, arcArgs(math.Pi, 2*math.Pi, false, 2)...)
	args = append(args, "50,0", "50,50")

	out, err := executeCommand(t, args...)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(lineWith(out, "(50.000, 0.000)"), "yes"), out)
	assert.True(t, strings.HasSuffix(lineWith(out, "(50.000, 50.000)"), "no"), out)
}

func TestContainsCommandBadPoint(t *testing.T) {
	args := append([]string{"contains"}, arcArgs(0, 1, true, 1)...)
	args = append(args, "50;90")

	_, err := executeCommand(t, args...)
	assert.Error(t, err)
}

func TestPointsCommand(t *testing.T) {
	args := append([]string{"points"}, arcArgs(0, math.Pi, false, 3)...)

	out, err := executeCommand(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "angle1 point  (100.000, 50.000)")
	assert.Contains(t, out, "angle2 point  (0.000, 50.000)")
	assert.Contains(t, lineWith(out, "Inner oval difference"), "3.000")
	assert.Contains(t, lineWith(out, "Centre"), "(50.000, 50.000)")
}

func TestPointsCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quarter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "quarter", "width": 200, "height": 100, "angle1": 0, "angle2": 1.5707963267948966}`), 0644))

	args := append([]string{"points"}, arcArgs(0, 0, true, 1)...)
	args = append(args, "--file", path)

	out, err := executeCommand(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "Arc: quarter")
	assert.Contains(t, out, "angle1 point  (200.000, 50.000)")
	assert.Contains(t, out, "angle2 point  (100.000, 100.000)")
}

func TestPointsCommandInvalid(t *testing.T) {
	args := append([]string{"points"}, arcArgs(0, 1, true, 1)...)
	args = append(args, "--width=-10")

	_, err := executeCommand(t, args...)
	var verr *arc.ValidationError
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	mask := filepath.Join(dir, "mask.png")

	args := append([]string{"render"}, arcArgs(0, math.Pi, true, 1)...)
	args = append(args, "--cols", "12", "--rows", "6", "--quiet=false", "--output", "", "--mask", mask, "--scale", "2")

	out, err := executeCommand(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "┌"+strings.Repeat("─", 12)+"┐")
	assert.Contains(t, out, "Mask written to: "+mask)

	info, err := os.Stat(mask)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunSweepsHalves(t *testing.T) {
	rect := arc.Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	results := runSweeps(rect, arc.DefaultStyle(), 7, math.Pi, 20, 20)

	require.Len(t, results, 7)
	for _, r := range results {
		assert.Greater(t, r.Compared, 0)
		assert.GreaterOrEqual(t, r.Agreement(), 0.99, "angle1 %.4f", r.Angle1)
	}
}

func TestRunSweepsQuarters(t *testing.T) {
	rect := arc.Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	results := runSweeps(rect, arc.DefaultStyle(), 4, math.Pi/2, 20, 20)

	for _, r := range results {
		assert.Less(t, r.Agreement(), 0.9, "angle1 %.4f", r.Angle1)
	}
}

func TestSweepCommand(t *testing.T) {
	args := append([]string{"sweep"}, arcArgs(0, 0, true, 1)...)
	args = append(args, "--steps", "4", "--span", fmt.Sprint(math.Pi), "--cols", "10", "--rows", "10", "--chart")

	out, err := executeCommand(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "SWEEP COMPARISON")
	assert.Contains(t, out, "Lowest agreement")
	assert.Contains(t, out, "agreement by start angle")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "arcgeom v")
}
