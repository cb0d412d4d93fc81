package reservation

import (
	"context"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
	"github.com/Lex0104/Saphir/internal/notify"
)

type DeleteReservation struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	actor *models.User,
	id uint,
) error {

	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(actor, res, domain.OpDelete); err != nil {
		return err
	}

	if err := uc.repo.DeleteReservation(ctx, res); err != nil {
		return err
	}

	// cancelled mail carries no link; the record is already gone
	uc.notifier.Dispatch(ctx, res, notify.ActionDeleted, actor, "")

	return nil
}
