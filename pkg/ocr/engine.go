package ocr

import (
	"context"
	"log"
)

// Progress is one diagnostic event emitted while a recognition run is in
// flight. Events are observability only; nothing in the pipeline branches on them.
type Progress struct {
	Stage  string // "normalize" or "recognize"
	Status string // "start", "done", "error"
	Detail string
}

// ProgressFunc receives progress events. Implementations must be fast and
// must not panic; they are called inline from the pipeline.
type ProgressFunc func(Progress)

// LogProgress is the default observer. It mirrors the events to the process log.
func LogProgress(p Progress) {
	if p.Detail != "" {
		log.Printf("ocr %s %s: %s", p.Stage, p.Status, p.Detail)
		return
	}
	log.Printf("ocr %s %s", p.Stage, p.Status)
}

// Engine is the external recognition capability. It accepts a path to an
// encoded image and a language tag and returns the full recognized text,
// newline-delimited by line. Implementations must honor ctx cancellation.
type Engine interface {
	Recognize(ctx context.Context, imagePath, lang string) (string, error)
}
