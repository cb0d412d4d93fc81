package httperr

import "errors"

// BusinessError is a rule violation identified by a stable code, e.g.
// "invalid_date" or "invalid_time" from reservation input validation. The
// code doubles as the error_code of the HTTP envelope.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness wraps a code as a BusinessError.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given business code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
