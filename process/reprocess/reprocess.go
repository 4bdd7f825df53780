package reprocess

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"spendscan/models"
	"spendscan/pkg/ocr"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

// Run re-runs the extraction pipeline over uploads previously marked failed.
// baseDir is the upload base the stored paths are relative to. If dry is true,
// only proposed changes are printed.
func Run(ctx context.Context, p *ocr.Pipeline, baseDir string, dry bool) error {
	gdb := mustDBFromEnv()

	var uploads []models.Upload
	if err := gdb.Where("failed = ?", true).Find(&uploads).Error; err != nil {
		return fmt.Errorf("query failed uploads: %w", err)
	}
	log.Printf("reprocess: %d failed uploads", len(uploads))

	for i := range uploads {
		up := &uploads[i]
		full := filepath.Join(baseDir, up.StorePath)
		rec, err := p.AnalyzeErr(ctx, full)
		if err != nil {
			log.Printf("reprocess still failing %s: %v", up.StorePath, err)
			continue
		}
		if dry {
			fmt.Printf("DRY: would record upload id=%d file=%s amount=%q category=%s\n", up.ID, up.FileName, rec.Amount, rec.Category)
			continue
		}
		exp, err := SaveRecord(gdb, up.UserID, filepath.Base(up.StorePath), rec)
		if err != nil {
			log.Printf("save expense for %s: %v", up.FileName, err)
			continue
		}
		up.ExpenseID = &exp.ID
		up.Failed = false
		up.FailedReason = ""
		if err := gdb.Save(up).Error; err != nil {
			log.Printf("update upload %d: %v", up.ID, err)
			continue
		}
		fmt.Printf("reprocessed upload id=%d file=%s expense=%d\n", up.ID, up.FileName, exp.ID)
	}
	return nil
}

// SaveRecord upserts the expense row for (userID, fileName) from a pipeline record.
func SaveRecord(gdb *gorm.DB, userID uint, fileName string, rec ocr.Record) (*models.Expense, error) {
	amountValue := 0.0
	if rec.Amount != "" {
		amountValue, _ = strconv.ParseFloat(rec.Amount, 64)
	}
	var exp models.Expense
	if err := gdb.Where("user_id = ? AND file_name = ?", userID, fileName).First(&exp).Error; err != nil {
		exp = models.Expense{UserID: userID, FileName: fileName}
	}
	exp.Text = rec.Text
	exp.Amount = rec.Amount
	exp.AmountValue = amountValue
	exp.Date = rec.Date
	exp.Category = string(rec.Category)
	exp.PaymentMethod = string(rec.PaymentMethod)
	exp.ConfidenceScore = rec.ConfidenceScore
	if err := gdb.Save(&exp).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}
