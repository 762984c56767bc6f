package models

import "time"

// Shot statuses recorded in the ledger.
const (
	ShotStatusOK       = "ok"
	ShotStatusRejected = "rejected"
	ShotStatusFailed   = "failed"
)

// Shot is one processed screenshot: the extracted trade fields (when the
// record validated) plus the filing outcome. One row per source file per
// batch date.
type Shot struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	BatchDate  string `gorm:"size:16;not null;uniqueIndex:idx_batch_file"`
	FileName   string `gorm:"size:255;not null;uniqueIndex:idx_batch_file"`
	NewName    string `gorm:"size:255"`
	Folder     string `gorm:"size:255"`
	Company    string `gorm:"size:64"`
	Strike     int
	OptionType string  `gorm:"size:4"`
	TradeTime  string  `gorm:"size:8"` // HH:MM
	Confidence float64 // timestamp strategy confidence
	Strategy   string  `gorm:"size:32"`
	Status     string  `gorm:"size:16;index"`
	Reason     string  `gorm:"size:255"` // rejection reason or failure cause
}
