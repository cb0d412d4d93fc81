package reservation

import (
	"context"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	actor *models.User,
	id uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, res, domain.OpViewDetail); err != nil {
		return nil, err
	}

	return res, nil
}
