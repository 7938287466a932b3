package service

// ResponseType enumerates the outcomes a service operation can report
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Conflict response, the resource is not in a state that allows the operation
	Conflict

	// RuleViolation response, a business rule refused the operation
	RuleViolation

	// Retry response, the resource changed underneath the operation
	Retry
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"conflict",
	"rule-violation",
	"retry",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
