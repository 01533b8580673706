package model

import "time"

// InvoiceCounter persists the monotonic invoice sequence, one row per year.
// Numbers are allocated inside a transaction so FAC-{year}-{seq} stays unique
// across operator sessions.
type InvoiceCounter struct {
	Year      int `gorm:"primaryKey"`
	LastSeq   int `gorm:"not null;default:0"`
	UpdatedAt time.Time
}
