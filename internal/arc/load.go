package arc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// File is an arc definition read from a JSON or TOML file.
//
// Example JSON:
//
//	{
//	  "name": "half circle",
//	  "left": 0, "top": 0, "width": 100, "height": 100,
//	  "angle1": 0, "angle2": 3.14159,
//	  "wedge": true,
//	  "fill": false,
//	  "strokewidth": 2
//	}
type File struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description,omitempty" toml:"description"`

	Left   float64 `json:"left" toml:"left"`
	Top    float64 `json:"top" toml:"top"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`

	// Sweep angles in radians
	Angle1 float64 `json:"angle1" toml:"angle1"`
	Angle2 float64 `json:"angle2" toml:"angle2"`

	Wedge bool `json:"wedge" toml:"wedge"`
	// Fill defaults to true when omitted
	Fill        *bool    `json:"fill,omitempty" toml:"fill"`
	StrokeWidth *float64 `json:"strokewidth,omitempty" toml:"strokewidth"`
}

// LoadFromFile loads an arc definition. The format is chosen by the
// file extension: .toml is read as TOML, anything else as JSON.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arc in %s: %w", path, err)
	}

	return &f, nil
}

// Rect returns the bounding rectangle of the definition
func (f *File) Rect() Rect {
	return Rect{Left: f.Left, Top: f.Top, Width: f.Width, Height: f.Height}
}

// Style returns the drawing style, filling in defaults for omitted fields
func (f *File) Style() Style {
	s := DefaultStyle()
	s.Wedge = f.Wedge
	if f.Fill != nil {
		s.Fill = *f.Fill
	}
	if f.StrokeWidth != nil {
		s.StrokeWidth = *f.StrokeWidth
	}
	return s
}

// Validate checks the definition
func (f *File) Validate() error {
	return Validate(f.Rect(), f.Angle1, f.Angle2, f.Style())
}

// Arc builds the arc described by the file
func (f *File) Arc() *Arc {
	return New(f.Rect(), f.Angle1, f.Angle2, f.Style())
}
