package arc

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeFile(t, "half.json", `{
  "name": "bottom half",
  "left": 0, "top": 0, "width": 100, "height": 100,
  "angle1": 0, "angle2": 3.141592653589793,
  "wedge": true
}`)

	f, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "bottom half", f.Name)
	assert.Equal(t, circle, f.Rect())
	assert.Equal(t, Style{Wedge: true, Fill: true, StrokeWidth: 1}, f.Style())

	a := f.Arc()
	assert.Equal(t, Point{100, 50}, a.Angle1Point())
	assert.Equal(t, Point{0, 50}, a.Angle2Point())
	assert.True(t, a.Contains(50, 90))
	assert.False(t, a.Contains(50, 10))
}

func TestLoadFromFileTOML(t *testing.T) {
	path := writeFile(t, "ring.toml", `
name = "top ring"
left = 0.0
top = 0.0
width = 100.0
height = 100.0
angle1 = 3.141592653589793
angle2 = 6.283185307179586
fill = false
strokewidth = 2.0
`)

	f, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "top ring", f.Name)
	assert.Equal(t, Style{Wedge: false, Fill: false, StrokeWidth: 2}, f.Style())

	a := f.Arc()
	assert.Equal(t, 2.0, a.InnerOvalDifference())
	assert.True(t, a.Contains(50, 0))
	assert.False(t, a.Contains(50, 50))
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeFile(t, "broken.json", `{"width": `))
	assert.Error(t, err)

	_, err = LoadFromFile(writeFile(t, "broken.toml", `width = = 3`))
	assert.Error(t, err)

	_, err = LoadFromFile(writeFile(t, "negative.json", `{"width": -5, "height": 10}`))
	require.Error(t, err)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "width must not be negative")
}

func TestValidate(t *testing.T) {
	style := DefaultStyle()

	assert.NoError(t, Validate(circle, 0, math.Pi, style))
	assert.NoError(t, Validate(Rect{Width: 0, Height: 0}, -20, 40, style))

	tests := []struct {
		name   string
		rect   Rect
		angle1 float64
		style  Style
		want   string
	}{
		{"negative width", Rect{Width: -1, Height: 1}, 0, style, "width must not be negative"},
		{"negative height", Rect{Width: 1, Height: -1}, 0, style, "height must not be negative"},
		{"negative stroke", circle, 0, Style{StrokeWidth: -2}, "strokewidth must not be negative"},
		{"nan angle", circle, math.NaN(), style, "angle1 must be a finite number"},
		{"infinite left", Rect{Left: math.Inf(-1), Width: 1, Height: 1}, 0, style, "left must be a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rect, tt.angle1, 0, tt.style)
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
