package ocr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestBinarizePureBlackWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{200, 180, 190, 255}) // mean 190 -> white
	img.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 255})    // mean 20 -> black
	img.SetNRGBA(0, 1, color.NRGBA{255, 0, 0, 128})     // mean 85 -> black
	img.SetNRGBA(1, 1, color.NRGBA{129, 129, 129, 0})   // mean 129 -> white, transparent

	out := Binarize(img)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := out.NRGBAAt(x, y)
			if c.R != c.G || c.G != c.B {
				t.Fatalf("pixel %d,%d channels differ: %+v", x, y, c)
			}
			if c.R != 0 && c.R != 255 {
				t.Fatalf("pixel %d,%d not pure black/white: %+v", x, y, c)
			}
		}
	}
	if out.NRGBAAt(0, 0).R != 255 || out.NRGBAAt(1, 0).R != 0 || out.NRGBAAt(0, 1).R != 0 || out.NRGBAAt(1, 1).R != 255 {
		t.Fatalf("threshold misapplied: %+v", out.Pix)
	}
	// Alpha passes through untouched, even when fully transparent.
	if out.NRGBAAt(0, 1).A != 128 || out.NRGBAAt(1, 1).A != 0 {
		t.Fatalf("alpha not preserved: %+v %+v", out.NRGBAAt(0, 1), out.NRGBAAt(1, 1))
	}
}

func TestBinarizeIdempotent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 29 % 256)
	}
	once := Binarize(img)
	twice := Binarize(once)
	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Fatalf("binarize not idempotent")
	}
}

func TestNormalizeDecodeError(t *testing.T) {
	_, err := Normalize("/nonexistent/receipt.jpg")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode got %v", err)
	}
}
