package reservation

import (
	"context"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
	"github.com/Lex0104/Saphir/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

// Nil fields stay unchanged.
type UpdateReservationInput struct {
	ID      uint
	TableID *uint
	Date    *string
	Time    *string
	Comment *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateReservation struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	actor *models.User,
	in UpdateReservationInput,
	baseURL string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, res, domain.OpUpdate); err != nil {
		return nil, err
	}

	if in.Date != nil {
		res.Date = *in.Date
	}
	if in.Time != nil {
		res.Time = *in.Time
	}
	if in.Comment != nil {
		res.Comment = *in.Comment
	}

	table := res.Table
	if in.TableID != nil {
		table, err = uc.repo.GetTable(ctx, *in.TableID)
		if err != nil {
			return nil, err
		}
		res.TableID = &table.ID
		res.Table = table
	}

	if err := validateDateTime(res.Date, res.Time); err != nil {
		return nil, err
	}

	if table != nil {
		// self-excluded re-check of the edited slot
		if err := uc.repo.AssertSlotFree(ctx, table, res.Date, res.Time, res.ID); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.SaveReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(ctx, res, notify.ActionUpdated, actor, baseURL)

	return res, nil
}
