package ocr

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// binarizeThreshold is the per-pixel luminance cutoff (unweighted RGB mean, 0-255).
const binarizeThreshold = 128

// Binarize forces every pixel's RGB channels to pure black or pure white based
// on the unweighted mean of the three channels. The alpha channel is copied
// through untouched, so fully transparent pixels still get binarized color
// channels. Idempotent: a binarized image binarizes to itself.
func Binarize(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := out.PixOffset(x, y)
			sum := int(out.Pix[i]) + int(out.Pix[i+1]) + int(out.Pix[i+2])
			// mean > threshold, compared without integer-division loss
			var v uint8
			if sum > 3*binarizeThreshold {
				v = 255
			}
			out.Pix[i] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
		}
	}
	return out
}

// Normalize decodes the image at path, binarizes it and re-encodes the result
// as JPEG into a temp file. The caller owns the returned path and removes it
// after recognition.
func Normalize(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	bin := Binarize(img)
	tmp, err := os.CreateTemp("", "normalized-*.jpg")
	if err != nil {
		return "", fmt.Errorf("temp file: %w", err)
	}
	_ = tmp.Close()
	if err := imaging.Save(bin, tmp.Name()); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("encode normalized image: %w", err)
	}
	return tmp.Name(), nil
}
