package reservation

import (
	"context"
	"time"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/httperr"
	"github.com/Lex0104/Saphir/internal/models"
	"github.com/Lex0104/Saphir/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	TableID uint
	Date    string
	Time    string
	Comment string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	actor *models.User,
	in CreateReservationInput,
	baseURL string,
) (*models.Reservation, error) {

	if actor == nil {
		return nil, domain.ErrAuthRequired
	}

	if err := validateDateTime(in.Date, in.Time); err != nil {
		return nil, err
	}

	table, err := uc.repo.GetTable(ctx, in.TableID)
	if err != nil {
		return nil, err
	}

	// Check-then-write: the slot check and the insert are two operations.
	// Concurrent writers can race; accepted tradeoff.
	if err := uc.repo.AssertSlotFree(ctx, table, in.Date, in.Time, 0); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		Date:     in.Date,
		Time:     in.Time,
		OwnerID:  &actor.ID,
		TableID:  &table.ID,
		Comment:  in.Comment,
		IsActive: true,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	res.Owner = actor
	res.Table = table

	uc.notifier.Dispatch(ctx, res, notify.ActionCreated, actor, baseURL)

	return res, nil
}

func validateDateTime(date, clock string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse(models.TimeLayout, clock); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}
