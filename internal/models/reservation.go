package models

import "time"

// Date is stored as "2006-01-02" and Time as "15:04", both interpreted in the
// deployment's local timezone. String storage keeps (date, time) equality exact
// across database engines.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	OwnerID *uint `json:"owner_id"`
	Owner   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner,omitempty"`

	TableID *uint  `json:"table_id"`
	Table   *Table `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"table,omitempty"`

	Comment string `gorm:"size:1000" json:"comment"`

	IsActive     bool `gorm:"default:true" json:"is_active"`
	ReminderSent bool `gorm:"default:false" json:"reminder_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// StartsAt combines Date and Time in loc. Reservations with an unparsable
// date or time report a zero instant.
func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.Time, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
