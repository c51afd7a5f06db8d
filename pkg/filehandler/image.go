package filehandler

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"GrayStego/pkg/grid"
	"GrayStego/pkg/models"
)

// JPEGQuality is used when saving .jpg/.jpeg files. JPEG stays lossy at
// any quality, so the low nibble of a stego image does not survive it.
const JPEGQuality = 100

// grayPalette maps palette index i to gray level i
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// LoadGrayscale decodes the image at path into an 8-bit intensity grid and
// returns the format it was stored in. Colour images are converted to luma.
// Every failure wraps models.ErrLoadFailure.
func LoadGrayscale(path string) (*grid.Grid, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to open %s: %w", models.ErrLoadFailure, path, err)
	}
	defer file.Close()

	g, format, err := DecodeGrayscale(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", models.ErrLoadFailure, path, err)
	}
	return g, format, nil
}

// DecodeGrayscale decodes an image stream into an intensity grid and
// returns the name of the format it was stored in.
func DecodeGrayscale(r io.Reader) (*grid.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return grid.FromImage(img), format, nil
}

// SaveGrayscale encodes g to path, inferring the format from the extension.
// A missing extension wraps models.ErrMissingExtension; any other problem
// wraps models.ErrWriteFailure. No file is left behind when encoding fails.
func SaveGrayscale(g *grid.Grid, path string) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid provided", models.ErrWriteFailure)
	}
	if !HasExtension(path) {
		return fmt.Errorf("%w: %s", models.ErrMissingExtension, path)
	}
	format, ok := FormatFromExtension(path)
	if !ok {
		return fmt.Errorf("%w: unsupported output extension %q", models.ErrWriteFailure, filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create directory: %w", models.ErrWriteFailure, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create file: %w", models.ErrWriteFailure, err)
	}

	if err := EncodeGrayscale(file, g, format); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %s: %w", models.ErrWriteFailure, path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: failed to close %s: %w", models.ErrWriteFailure, path, err)
	}
	return nil
}

// EncodeGrayscale writes g to w in the named format (see SupportedImageFormats).
func EncodeGrayscale(w io.Writer, g *grid.Grid, format string) error {
	img := g.Image()

	switch format {
	case "png":
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		return encoder.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case "gif":
		// Encoding *image.Gray directly would quantize to the Plan 9 palette
		pal := &image.Paletted{
			Pix:     g.Pix,
			Stride:  g.Width,
			Rect:    img.Rect,
			Palette: grayPalette,
		}
		return gif.Encode(w, pal, &gif.Options{NumColors: len(grayPalette)})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
