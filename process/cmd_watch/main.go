package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"spendscan/pkg/ocr"
	"spendscan/process/reprocess"
	"spendscan/process/watcher"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Watches a hot folder for new receipt images and runs the extraction
// pipeline on each. With -user-id the resulting records are stored as that
// user's expenses; otherwise they are printed only.
func main() {
	dir := flag.String("dir", "inbox", "directory to watch for receipt images")
	workers := flag.Int("workers", 0, "worker pool size (default NumCPU)")
	userID := flag.Uint("user-id", 0, "user to attribute stored expenses to (0 = print only)")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	var gdb *gorm.DB
	if *userID > 0 {
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			log.Fatal("DB_DSN must be set when -user-id is given")
		}
		var err error
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
	}

	p := ocr.NewPipeline(ocr.Tesseract{})
	w := watcher.New(*dir, *workers, func(path string) {
		rec, err := p.AnalyzeErr(context.Background(), path)
		if err != nil {
			log.Printf("pipeline failed %s: %v", path, err)
			return
		}
		out, _ := json.Marshal(rec)
		fmt.Printf("%s %s\n", filepath.Base(path), out)
		if gdb != nil {
			if _, err := reprocess.SaveRecord(gdb, *userID, filepath.Base(path), rec); err != nil {
				log.Printf("store expense %s: %v", path, err)
			}
		}
	})
	if err := w.Run(); err != nil {
		log.Fatalf("watch: %v", err)
	}
}
