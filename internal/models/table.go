package models

import "time"

type Table struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Number      uint   `gorm:"uniqueIndex;not null" json:"number"`
	Seats       uint   `gorm:"not null" json:"seats"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
