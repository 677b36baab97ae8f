package models

import "time"

// Record is one persisted expense entry. Records are append-only: there are
// no update or delete operations anywhere in the service. CreatedAt is
// assigned by the store at write time and drives all range queries.
//
// Amount is a plain integer in the user's (single, implicit) currency. Zero
// and negative amounts are stored as-is.
type Record struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Amount     int64     `gorm:"type:bigint;not null" json:"amount"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CategoryID uint      `gorm:"not null" json:"category_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
