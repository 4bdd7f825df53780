package models

import (
	"time"
)

// Upload represents a stored receipt image file.
type Upload struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FileName    string `gorm:"size:255;not null"`
	StorePath   string `gorm:"column:store_path;size:512"` // relative path under the upload base
	UserID      uint   `gorm:"index;not null"`
	User        User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ContentType string `gorm:"size:128"`
	ExpenseID   *uint  `gorm:"index"` // FK to expenses.id, set once the pipeline succeeds
	// Mark upload as failed for pipeline processing (record kept so it can be
	// retried or reviewed rather than deleted)
	Failed       bool   `gorm:"default:false;index"`
	FailedReason string `gorm:"size:255"`
}
