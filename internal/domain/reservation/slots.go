package reservation

import (
	"time"

	"github.com/Lex0104/Saphir/internal/models"
)

const (
	SlotDuration = 30 * time.Minute
	WindowDays   = 7
)

// Slot is one bookable (date, time) unit for a table.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ReservedSet holds the occupied times of a table keyed by date ("2006-01-02")
// then by time ("15:04"). Only active reservations belong here.
type ReservedSet map[string]map[string]bool

func (s ReservedSet) Add(date, clock string) {
	if s[date] == nil {
		s[date] = make(map[string]bool)
	}
	s[date][clock] = true
}

func (s ReservedSet) Has(date, clock string) bool {
	return s[date][clock]
}

// RoundTimeToNextSlot returns the next 30-minute boundary strictly after t:
// minutes in [0,30) round to :30 of the same hour, minute 30 and later round
// up to :00 of the next hour. The instant itself is never returned, so a
// booking always has a non-zero lead time even when now sits exactly on a
// boundary.
func RoundTimeToNextSlot(t time.Time) time.Time {
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	if t.Minute() < 30 {
		return base.Add(30 * time.Minute)
	}
	return base.Add(time.Hour)
}

// FreeSlots generates the free (date, time) slots of one table over a rolling
// window of days, excluding every slot present in reserved. Day 0 starts at
// the rounded boundary after now, later days at 00:00; the last candidate of
// every day is 23:30. Output is ascending by (date, time).
func FreeSlots(now time.Time, days int, reserved ReservedSet) []Slot {
	if days <= 0 {
		days = WindowDays
	}

	var slots []Slot

	for dayOffset := 0; dayOffset < days; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		date := day.Format(models.DateLayout)

		cur := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		if dayOffset == 0 {
			cur = RoundTimeToNextSlot(now)
			// rounding past midnight leaves no bookable slot today
			if cur.Day() != day.Day() {
				continue
			}
		}

		end := time.Date(day.Year(), day.Month(), day.Day(), 23, 30, 0, 0, day.Location())

		for !cur.After(end) {
			clock := cur.Format(models.TimeLayout)
			if !reserved.Has(date, clock) {
				slots = append(slots, Slot{Date: date, Time: clock})
			}
			cur = cur.Add(SlotDuration)
		}
	}

	return slots
}
