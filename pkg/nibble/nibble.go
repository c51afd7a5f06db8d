// Package nibble hides one grayscale image in the low-order bit plane of
// another and recovers it again.
//
// Each stego pixel keeps the cover's high nibble and carries the secret's
// high nibble in its low nibble:
//
//	cover  1101 0110 (214)
//	secret 1011 0000 (176)
//	stego  1101 1011 (219)
//
// Recovery shifts the low nibble back up, so the secret comes back
// quantized to multiples of 16. The secret's low nibble is discarded.
package nibble

import (
	"fmt"

	"GrayStego/pkg/grid"
	"GrayStego/pkg/models"
	"GrayStego/pkg/resample"
)

const (
	highNibble uint8 = 0xF0
	lowNibble  uint8 = 0x0F
	nibbleBits       = 4
)

// EmbedPixel combines one cover and one secret intensity.
func EmbedPixel(cover, secret uint8) uint8 {
	return (cover & highNibble) | (secret >> nibbleBits)
}

// ExtractPixel recovers the hidden intensity from one stego intensity.
func ExtractPixel(stego uint8) uint8 {
	return (stego & lowNibble) << nibbleBits
}

// Embed hides secret inside cover and returns a new stego grid with the
// cover's dimensions. When the sizes differ, secret is first resized to
// the cover's width and height with rs. Neither input is modified.
func Embed(cover, secret *grid.Grid, rs resample.Resampler) (*grid.Grid, error) {
	if cover == nil {
		return nil, fmt.Errorf("cover grid: %w", models.ErrLoadFailure)
	}
	if secret == nil {
		return nil, fmt.Errorf("secret grid: %w", models.ErrLoadFailure)
	}
	if !cover.Valid() {
		return nil, fmt.Errorf("cover grid %v has %d pixels", cover, len(cover.Pix))
	}
	if !secret.Valid() {
		return nil, fmt.Errorf("secret grid %v has %d pixels", secret, len(secret.Pix))
	}

	if !cover.SameSize(secret) {
		if rs == nil {
			return nil, fmt.Errorf("secret is %v but cover is %v and no resampler was provided", secret, cover)
		}
		resized, err := rs.Resize(secret, cover.Width, cover.Height)
		if err != nil {
			return nil, fmt.Errorf("failed to resize secret with %s: %w", rs.Name(), err)
		}
		secret = resized
	}

	stego := grid.New(cover.Width, cover.Height)
	for i, c := range cover.Pix {
		stego.Pix[i] = EmbedPixel(c, secret.Pix[i])
	}
	return stego, nil
}

// Extract recovers the hidden image from a stego grid.
func Extract(stego *grid.Grid) (*grid.Grid, error) {
	if stego == nil {
		return nil, fmt.Errorf("stego grid: %w", models.ErrLoadFailure)
	}
	if !stego.Valid() {
		return nil, fmt.Errorf("stego grid %v has %d pixels", stego, len(stego.Pix))
	}

	recovered := grid.New(stego.Width, stego.Height)
	for i, s := range stego.Pix {
		recovered.Pix[i] = ExtractPixel(s)
	}
	return recovered, nil
}
