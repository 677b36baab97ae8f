package models

import "time"

// User is a chat user identified by a unique handle. Users are created on
// their first recorded expense and never deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Records []Record `gorm:"foreignKey:UserID" json:"records,omitempty"`
}
