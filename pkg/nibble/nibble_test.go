package nibble

import (
	"errors"
	"math/rand"
	"testing"

	"GrayStego/pkg/grid"
	"GrayStego/pkg/models"
	"GrayStego/pkg/resample"
)

func randomGrid(r *rand.Rand, w, h int) *grid.Grid {
	g := grid.New(w, h)
	for i := range g.Pix {
		g.Pix[i] = uint8(r.Intn(256))
	}
	return g
}

func TestPixelScenarios(t *testing.T) {
	if got := EmbedPixel(214, 176); got != 219 {
		t.Fatalf("EmbedPixel(214, 176) = %d, want 219", got)
	}
	if got := ExtractPixel(219); got != 176 {
		t.Fatalf("ExtractPixel(219) = %d, want 176", got)
	}
}

func TestPixelExhaustive(t *testing.T) {
	for c := 0; c < 256; c++ {
		for s := 0; s < 256; s++ {
			stego := EmbedPixel(uint8(c), uint8(s))
			if stego&0xF0 != uint8(c)&0xF0 {
				t.Fatalf("cover high nibble lost: c=%d s=%d stego=%d", c, s, stego)
			}
			if got, want := ExtractPixel(stego), uint8(s/16*16); got != want {
				t.Fatalf("round trip c=%d s=%d: got %d want %d", c, s, got, want)
			}
		}
	}
}

func TestRoundTripQuantizesSecret(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	cover := randomGrid(r, 17, 9)
	secret := randomGrid(r, 17, 9)

	stego, err := Embed(cover, secret, nil)
	if err != nil {
		t.Fatal(err)
	}
	recovered, err := Extract(stego)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range secret.Pix {
		if want := s / 16 * 16; recovered.Pix[i] != want {
			t.Fatalf("pixel %d: recovered %d, want %d", i, recovered.Pix[i], want)
		}
	}
}

func TestEmbedIsDeterministicAndPure(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	cover := randomGrid(r, 8, 8)
	secret := randomGrid(r, 8, 8)
	coverCopy, secretCopy := cover.Clone(), secret.Clone()

	a, err := Embed(cover, secret, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Embed(cover, secret, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("identical inputs produced different stego grids")
	}
	if !cover.Equal(coverCopy) || !secret.Equal(secretCopy) {
		t.Fatal("Embed modified its inputs")
	}
}

func TestEmbedResizesSecret(t *testing.T) {
	cover := grid.Filled(4, 4, 214)
	secret := grid.Filled(2, 2, 176)
	for _, name := range []string{"nearest", resample.DefaultMethod} {
		t.Run(name, func(t *testing.T) {
			rs, err := resample.NewDefaultRegistry().Get(name)
			if err != nil {
				t.Fatal(err)
			}
			stego, err := Embed(cover, secret, rs)
			if err != nil {
				t.Fatal(err)
			}
			if stego.Width != 4 || stego.Height != 4 {
				t.Fatalf("stego size = %v, want 4x4", stego)
			}
			for i, v := range stego.Pix {
				if v != 219 {
					t.Fatalf("Pix[%d] = %d, want 219", i, v)
				}
			}
		})
	}
}

func TestEmbedNearestResizeLayout(t *testing.T) {
	cover := grid.New(4, 4)
	secret, _ := grid.FromRows([][]uint8{{0x10, 0x20}, {0x30, 0x40}})
	rs, _ := resample.NewDefaultRegistry().Get("nearest")
	stego, err := Embed(cover, secret, rs)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{1, 1, 2, 2, 1, 1, 2, 2, 3, 3, 4, 4, 3, 3, 4, 4}
	for i, v := range want {
		if stego.Pix[i] != v {
			t.Fatalf("Pix = %v, want %v", stego.Pix, want)
		}
	}
}

func TestEmbedMismatchWithoutResampler(t *testing.T) {
	if _, err := Embed(grid.New(4, 4), grid.New(2, 2), nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestBoundaryZeroCoverFullSecret(t *testing.T) {
	stego, err := Embed(grid.Filled(3, 2, 0), grid.Filled(3, 2, 255), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range stego.Pix {
		if v != 0x0F {
			t.Fatalf("stego Pix[%d] = %d, want 15", i, v)
		}
	}
	recovered, err := Extract(stego)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range recovered.Pix {
		if v != 0xF0 {
			t.Fatalf("recovered Pix[%d] = %d, want 240", i, v)
		}
	}
}

func TestNilGridsSignalLoadFailure(t *testing.T) {
	g := grid.New(1, 1)
	cases := []struct {
		name string
		err  error
	}{
		{"nil cover", func() error { _, err := Embed(nil, g, nil); return err }()},
		{"nil secret", func() error { _, err := Embed(g, nil, nil); return err }()},
		{"nil stego", func() error { _, err := Extract(nil); return err }()},
	}
	for _, c := range cases {
		if !errors.Is(c.err, models.ErrLoadFailure) {
			t.Errorf("%s: err = %v, want ErrLoadFailure", c.name, c.err)
		}
	}
}

func TestMalformedGridsRejected(t *testing.T) {
	hollow := &grid.Grid{Width: 2, Height: 2}
	if _, err := Embed(grid.New(2, 2), hollow, nil); err == nil {
		t.Fatal("expected error for secret without pixels")
	}
	if _, err := Embed(hollow, grid.New(2, 2), nil); err == nil {
		t.Fatal("expected error for cover without pixels")
	}
	if _, err := Extract(hollow); err == nil {
		t.Fatal("expected error for stego without pixels")
	}
}

func TestEmbedDefaultResamplerGolden(t *testing.T) {
	cover := grid.Filled(4, 4, 0xA0)
	secret, _ := grid.FromRows([][]uint8{{0x10, 0x20}, {0x30, 0x40}})
	rs, err := resample.NewDefaultRegistry().Get(resample.DefaultMethod)
	if err != nil {
		t.Fatal(err)
	}
	stego, err := Embed(cover, secret, rs)
	if err != nil {
		t.Fatal(err)
	}
	// Bilinear upscale of the secret is
	//	16 20 28 32
	//	24 28 36 40
	//	40 44 52 56
	//	48 52 60 64
	want := [][]uint8{
		{161, 161, 161, 162},
		{161, 161, 162, 162},
		{162, 162, 163, 163},
		{163, 163, 163, 164},
	}
	for y, row := range want {
		for x, v := range row {
			if stego.At(x, y) != v {
				t.Fatalf("At(%d,%d) = %d, want %d (stego %v)", x, y, stego.At(x, y), v, stego.Pix)
			}
		}
	}
}
