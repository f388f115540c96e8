package httperr

import "errors"

// Error codes shared by use cases and handlers.
const (
	CodeSlotTaken        = "slot_taken"
	CodeBarberNotFound   = "barber_not_found"
	CodeServiceNotFound  = "service_not_found"
	CodeSessionRequired  = "session_required"
	CodeMissingParams    = "missing_params"
	CodeInternal         = "internal_error"
	CodeTranscriptFailed = "transcript_failed"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
