package models

import "time"

// ===============================
// Staff positions
// ===============================

type Position string

const (
	PositionOwner     Position = "owner"
	PositionManager   Position = "manager"
	PositionTheChef   Position = "the_chef"
	PositionSousChef  Position = "sous_chef"
	PositionChef      Position = "chef"
	PositionHostess   Position = "hostess"
	PositionWaiter    Position = "waiter"
	PositionBartender Position = "bartender"
)

func (p Position) Valid() bool {
	switch p {
	case PositionOwner, PositionManager, PositionTheChef, PositionSousChef,
		PositionChef, PositionHostess, PositionWaiter, PositionBartender:
		return true
	}
	return false
}

type Worker struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName   string   `gorm:"size:30;not null" json:"first_name"`
	LastName    string   `gorm:"size:50;not null" json:"last_name"`
	Position    Position `gorm:"size:20;not null" json:"position"`
	Description string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
