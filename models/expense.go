package models

import "time"

// Expense is one extracted receipt record belonging to a user. The string
// fields mirror the pipeline output verbatim (Amount keeps the exact matched
// substring); AmountValue is the parsed float kept alongside for summaries.
type Expense struct {
	ID              uint `gorm:"primaryKey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          uint    `gorm:"index;not null;uniqueIndex:idx_user_file"`
	FileName        string  `gorm:"size:255;not null;uniqueIndex:idx_user_file"`
	Text            string  `gorm:"type:text"`
	Amount          string  `gorm:"size:32"`
	AmountValue     float64 `gorm:"index"`
	Date            string  `gorm:"size:16"`
	Category        string  `gorm:"size:16;index"`
	PaymentMethod   string  `gorm:"size:16;index"`
	ConfidenceScore int     `gorm:"not null;default:0"`
}
