package reservation

import (
	"context"
	"time"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
)

type GetFreeSlots struct {
	repo domain.Repository
}

func NewGetFreeSlots(repo domain.Repository) *GetFreeSlots {
	return &GetFreeSlots{repo: repo}
}

// Execute computes the table's free slots over the rolling window starting at
// now. Occupied (date, time) pairs come from the active reservations of each
// day in the window.
func (uc *GetFreeSlots) Execute(
	ctx context.Context,
	tableID uint,
	now time.Time,
	days int,
) (*models.Table, []domain.Slot, error) {

	table, err := uc.repo.GetTable(ctx, tableID)
	if err != nil {
		return nil, nil, err
	}

	if days <= 0 {
		days = domain.WindowDays
	}

	reserved := make(domain.ReservedSet)
	for dayOffset := 0; dayOffset < days; dayOffset++ {
		date := now.AddDate(0, 0, dayOffset).Format(models.DateLayout)

		times, err := uc.repo.ReservedTimes(ctx, table.ID, date)
		if err != nil {
			return nil, nil, err
		}
		for _, clock := range times {
			reserved.Add(date, clock)
		}
	}

	return table, domain.FreeSlots(now, days, reserved), nil
}
