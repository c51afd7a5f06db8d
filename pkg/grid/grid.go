// Package grid provides the 8-bit single-channel intensity grid that the
// hiding and recovery operations work on.
//
// A Grid stores its pixels row-major, one byte per pixel:
//
//	Pixels: (0,0) (1,0) (2,0)
//	        (0,1) (1,1) (2,1)
//	Pix:    [ p00 p10 p20 p01 p11 p21 ]
//
// Grids convert to and from *image.Gray so they can be passed through the
// standard image codecs and the resampling libraries.
package grid

import (
	"fmt"
	"image"
	"image/color"
)

// Grid is a height x width array of 8-bit intensities.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// New creates a zero-filled grid. Negative dimensions are treated as zero.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// FromRows builds a grid from a slice of rows. All rows must have the same length.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	width := len(rows[0])
	g := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d pixels, expected %d", y, len(row), width)
		}
		copy(g.Pix[y*width:(y+1)*width], row)
	}
	return g, nil
}

// Filled creates a grid where every pixel has the value v.
func Filled(width, height int, v uint8) *Grid {
	g := New(width, height)
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// FromImage converts any image to a grid. *image.Gray sources are copied
// as-is. For everything else alpha is dropped: each pixel is un-premultiplied
// and its colour goes through color.GrayModel (ITU-R BT.601 luma), so fully
// transparent pixels keep the luma of their colour.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := New(b.Dx(), b.Dy())

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.Height; y++ {
			start := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*g.Width:(y+1)*g.Width], gray.Pix[start:start+g.Width])
		}
		return g
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			c.A = 0xFF
			g.Pix[y*g.Width+x] = color.GrayModel.Convert(c).(color.Gray).Y
		}
	}
	return g
}

// Image returns an *image.Gray anchored at the origin that shares its
// pixel buffer with the grid.
func (g *Grid) Image() *image.Gray {
	return &image.Gray{
		Pix:    g.Pix,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

// At returns the intensity at (x, y).
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set writes the intensity at (x, y).
func (g *Grid) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Valid reports whether the pixel buffer matches the dimensions.
func (g *Grid) Valid() bool {
	return g.Width >= 0 && g.Height >= 0 && len(g.Pix) == g.Width*g.Height
}

// SameSize reports whether both grids have identical dimensions.
func (g *Grid) SameSize(o *Grid) bool {
	return g.Width == o.Width && g.Height == o.Height
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.Width, g.Height)
	copy(c.Pix, g.Pix)
	return c
}

// Equal reports whether both grids have the same size and pixels.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameSize(o) {
		return false
	}
	for i := range g.Pix {
		if g.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

func (g *Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
