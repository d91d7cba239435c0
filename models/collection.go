package models

import "time"

// Collection is one row per record-store key ("bookings", "preorders"), the
// value holding the whole collection as a JSON array. Every save replaces the
// value wholesale, there is no per-record update.
type Collection struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"not null"`
}
