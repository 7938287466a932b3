package models

// ValidationError is returned when input is rejected before any state is touched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError returns a ValidationError carrying reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// TransitionError is returned by an aggregate when its current status does
// not allow the requested transition.
type TransitionError struct {
	Reason string
	From   string
}

func (e *TransitionError) Error() string {
	return e.Reason
}

func newTransitionError(reason, from string) error {
	return &TransitionError{Reason: reason, From: from}
}
