package ocr

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultTimeout bounds one full pipeline run (decode + binarize + recognize).
// Recognition time grows with image size, so this is generous.
const DefaultTimeout = 60 * time.Second

// Lang is the language tag handed to the recognition engine.
const Lang = "eng"

// Pipeline sequences normalization, recognition and the four field extractors.
// Runs are independent; a single Pipeline may be used concurrently as long as
// the engine is reentrant.
type Pipeline struct {
	engine   Engine
	progress ProgressFunc
	timeout  time.Duration
}

// NewPipeline builds a pipeline around the given engine with the default
// timeout and log-backed progress observer.
func NewPipeline(engine Engine) *Pipeline {
	return &Pipeline{engine: engine, progress: LogProgress, timeout: DefaultTimeout}
}

// SetProgress replaces the progress observer. A nil fn silences events.
func (p *Pipeline) SetProgress(fn ProgressFunc) {
	p.progress = fn
}

// SetTimeout replaces the per-run deadline. Non-positive values keep the default.
func (p *Pipeline) SetTimeout(d time.Duration) {
	if d > 0 {
		p.timeout = d
	}
}

func (p *Pipeline) emit(stage, status, detail string) {
	if p.progress != nil {
		p.progress(Progress{Stage: stage, Status: status, Detail: detail})
	}
}

// Analyze runs the full pipeline over the image at path. Callers never observe
// an error: any normalization or recognition failure yields the default record.
func (p *Pipeline) Analyze(ctx context.Context, path string) Record {
	rec, _ := p.AnalyzeErr(ctx, path)
	return rec
}

// AnalyzeErr is Analyze plus the failure cause, for callers that record why a
// run degraded to the default. The returned Record is always usable.
func (p *Pipeline) AnalyzeErr(ctx context.Context, path string) (Record, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.emit("normalize", "start", path)
	normalized, err := Normalize(path)
	if err != nil {
		p.emit("normalize", "error", err.Error())
		return DefaultRecord(), err
	}
	defer os.Remove(normalized)
	p.emit("normalize", "done", "")

	p.emit("recognize", "start", "")
	text, err := p.engine.Recognize(ctx, normalized, Lang)
	if err != nil {
		p.emit("recognize", "error", err.Error())
		return DefaultRecord(), fmt.Errorf("%w: %v", ErrRecognize, err)
	}
	p.emit("recognize", "done", snippet(text, 120))

	return Record{
		Text:            text,
		Amount:          ExtractAmount(text),
		Date:            ExtractDate(text),
		Category:        ExtractCategory(text),
		PaymentMethod:   ExtractPaymentMethod(text),
		ConfidenceScore: 100,
	}, nil
}
