package diagram

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/alexiusacademia/arcgeom/internal/arc"
)

var (
	maskInside  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	maskOutside = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RenderMask turns a sampled mask into an image with one pixel per
// sample, then scales it up by an integer factor with nearest-neighbour
// interpolation so the cells stay crisp.
func RenderMask(mask *arc.Mask, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, mask.Cols, mask.Rows))
	for row := 0; row < mask.Rows; row++ {
		for col := 0; col < mask.Cols; col++ {
			if mask.At(col, row) {
				src.SetRGBA(col, row, maskInside)
			} else {
				src.SetRGBA(col, row, maskOutside)
			}
		}
	}
	if scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, mask.Cols*scale, mask.Rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WriteMaskPNG renders the mask and writes it as a PNG file
func WriteMaskPNG(mask *arc.Mask, scale int, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := png.Encode(f, RenderMask(mask, scale)); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return f.Close()
}
