package reservation

import (
	"context"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
)

const RosterPageSize = 10

// ListReservations is the staff roster: active reservations only, optional
// date and table-number filters, Manager role required.
type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	actor *models.User,
	f domain.ListFilter,
) ([]models.Reservation, int64, error) {

	if err := domain.Authorize(actor, nil, domain.OpViewList); err != nil {
		return nil, 0, err
	}

	if f.PageSize <= 0 {
		f.PageSize = RosterPageSize
	}

	return uc.repo.ListActive(ctx, f)
}

// ListOwnReservations returns the requester's reservations, active or not.
type ListOwnReservations struct {
	repo domain.Repository
}

func NewListOwnReservations(repo domain.Repository) *ListOwnReservations {
	return &ListOwnReservations{repo: repo}
}

func (uc *ListOwnReservations) Execute(
	ctx context.Context,
	actor *models.User,
) ([]models.Reservation, error) {

	if actor == nil {
		return nil, domain.ErrAuthRequired
	}

	return uc.repo.ListForOwner(ctx, actor.ID)
}
