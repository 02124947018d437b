package httperr

import "errors"

// BusinessError is a recoverable, caller-visible rule violation. Code is the
// stable machine-readable kind; Message is shown to the end user.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// Is matches on Code so errors.Is works against the package sentinels.
func (e BusinessError) Is(target error) bool {
	t, ok := target.(BusinessError)
	return ok && t.Code == e.Code
}

func New(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
