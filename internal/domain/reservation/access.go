package reservation

import "github.com/Lex0104/Saphir/internal/models"

// ===============================
// Access policy
// ===============================

type Operation string

const (
	OpViewList   Operation = "view-list"
	OpViewDetail Operation = "view-detail"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
)

// Authorize decides whether actor may perform op on res.
//
// Update, delete and detail view are allowed for the reservation's owner and
// for holders of the Manager role. The staff roster (view-list) is Manager
// only; res is ignored for it. A nil actor gets ErrAuthRequired so the
// transport layer can redirect to login instead of returning a bare denial.
func Authorize(actor *models.User, res *models.Reservation, op Operation) error {
	if actor == nil {
		return ErrAuthRequired
	}

	switch op {
	case OpViewList:
		if actor.IsManager() {
			return nil
		}
		return ErrPermissionDenied

	case OpViewDetail, OpUpdate, OpDelete:
		if res != nil && res.OwnerID != nil && *res.OwnerID == actor.ID {
			return nil
		}
		if actor.IsManager() {
			return nil
		}
		return ErrPermissionDenied
	}

	return ErrPermissionDenied
}
