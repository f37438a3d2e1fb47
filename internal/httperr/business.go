package httperr

import "errors"

type BusinessError struct {
	Code string
	// Reason carries human-readable context surfaced to the caller,
	// e.g. the blocking range's reason text.
	Reason string
}

func (e BusinessError) Error() string {
	if e.Reason != "" {
		return e.Code + ": " + e.Reason
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessReason(code, reason string) error {
	return BusinessError{Code: code, Reason: reason}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessReason(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Reason
	}
	return ""
}
