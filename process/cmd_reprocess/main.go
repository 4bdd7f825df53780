package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"spendscan/pkg/ocr"
	"spendscan/process/reprocess"
)

func main() {
	base := flag.String("base", "uploads", "upload base directory the stored paths are relative to")
	dry := flag.Bool("dry-run", true, "dry-run: don't write to DB")
	flag.Parse()

	if os.Getenv("DB_DSN") == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN not set; export and retry")
		os.Exit(2)
	}

	p := ocr.NewPipeline(ocr.Tesseract{})
	if err := reprocess.Run(context.Background(), p, *base, *dry); err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}
}
