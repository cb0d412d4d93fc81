package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lex0104/Saphir/internal/models"
)

func makeActors() (owner, manager, stranger *models.User, res *models.Reservation) {
	owner = &models.User{ID: 1, Email: "guest@example.com"}
	manager = &models.User{
		ID:    2,
		Email: "manager@example.com",
		Roles: []models.Role{{ID: 1, Name: models.RoleManager}},
	}
	stranger = &models.User{ID: 3, Email: "other@example.com"}

	ownerID := owner.ID
	res = &models.Reservation{ID: 10, OwnerID: &ownerID, Date: "2025-07-01", Time: "18:00"}
	return
}

func TestAuthorizeMatrix(t *testing.T) {
	owner, manager, stranger, res := makeActors()

	cases := []struct {
		name  string
		actor *models.User
		op    Operation
		want  error
	}{
		{"owner update", owner, OpUpdate, nil},
		{"owner delete", owner, OpDelete, nil},
		{"owner detail", owner, OpViewDetail, nil},
		{"owner list", owner, OpViewList, ErrPermissionDenied},

		{"manager update", manager, OpUpdate, nil},
		{"manager delete", manager, OpDelete, nil},
		{"manager detail", manager, OpViewDetail, nil},
		{"manager list", manager, OpViewList, nil},

		{"stranger update", stranger, OpUpdate, ErrPermissionDenied},
		{"stranger delete", stranger, OpDelete, ErrPermissionDenied},
		{"stranger detail", stranger, OpViewDetail, ErrPermissionDenied},
		{"stranger list", stranger, OpViewList, ErrPermissionDenied},

		{"anonymous update", nil, OpUpdate, ErrAuthRequired},
		{"anonymous delete", nil, OpDelete, ErrAuthRequired},
		{"anonymous list", nil, OpViewList, ErrAuthRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, res, tc.op)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestAuthorizeOwnerlessReservation(t *testing.T) {
	_, manager, stranger, res := makeActors()
	res.OwnerID = nil

	assert.NoError(t, Authorize(manager, res, OpUpdate))
	assert.ErrorIs(t, Authorize(stranger, res, OpUpdate), ErrPermissionDenied)
}

func TestAuthorizeUnknownOperation(t *testing.T) {
	owner, _, _, res := makeActors()
	assert.ErrorIs(t, Authorize(owner, res, Operation("export")), ErrPermissionDenied)
}
