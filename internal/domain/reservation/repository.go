package reservation

import (
	"context"

	"github.com/Lex0104/Saphir/internal/models"
)

// ListFilter narrows the staff roster. Zero values mean "no filter".
type ListFilter struct {
	Date        string
	TableNumber uint
	Page        int
	PageSize    int
}

type Repository interface {
	// -------- Tables --------
	GetTable(ctx context.Context, id uint) (*models.Table, error)

	ListTables(ctx context.Context) ([]models.Table, error)

	// -------- Reservations (CRUD) --------
	CreateReservation(ctx context.Context, res *models.Reservation) error

	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)

	SaveReservation(ctx context.Context, res *models.Reservation) error

	DeleteReservation(ctx context.Context, res *models.Reservation) error

	// -------- Slots / conflicts --------

	// ReservedTimes returns the "15:04" times of the table's active
	// reservations on date.
	ReservedTimes(ctx context.Context, tableID uint, date string) ([]string, error)

	// AssertSlotFree fails with *ConflictError when an active reservation
	// other than excludeID already occupies (table, date, clock). The check
	// and the subsequent write are not atomic; concurrent writers can race.
	AssertSlotFree(ctx context.Context, table *models.Table, date, clock string, excludeID uint) error

	// -------- Listings --------
	ListActive(ctx context.Context, f ListFilter) ([]models.Reservation, int64, error)

	ListForOwner(ctx context.Context, ownerID uint) ([]models.Reservation, error)

	// -------- Sweep --------
	ListActiveForDate(ctx context.Context, date string) ([]models.Reservation, error)

	ListDueReminders(ctx context.Context, date string) ([]models.Reservation, error)
}
