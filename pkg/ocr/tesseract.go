package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements Engine on the local tesseract installation.
type Tesseract struct{}

// Recognize runs a single OCR pass over the image at imagePath. gosseract has
// no native cancellation, so the call runs in its own goroutine and the result
// is dropped if ctx expires first.
func (Tesseract) Recognize(ctx context.Context, imagePath, lang string) (string, error) {
	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		client := gosseract.NewClient()
		defer client.Close()
		if err := client.SetLanguage(lang); err != nil {
			ch <- result{err: fmt.Errorf("set language %q: %w", lang, err)}
			return
		}
		if err := client.SetImage(imagePath); err != nil {
			ch <- result{err: fmt.Errorf("set image: %w", err)}
			return
		}
		text, err := client.Text()
		if err != nil {
			ch <- result{err: fmt.Errorf("tesseract: %w", err)}
			return
		}
		ch <- result{text: text}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.text, r.err
	}
}
