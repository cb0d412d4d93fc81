package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRequired     = errors.New("authentication_required")
	ErrPermissionDenied = errors.New("permission_denied")
	ErrNotFound         = errors.New("reservation_not_found")
)

// ConflictError reports that an active reservation already occupies the exact
// (table, date, time) slot. It carries the table display number so the caller
// can name the table in the validation message.
type ConflictError struct {
	TableNumber uint
	Date        string
	Time        string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("table %d is already reserved for %s %s", e.TableNumber, e.Date, e.Time)
}

func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
