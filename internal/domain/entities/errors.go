package entities

import "fmt"

// The engine distinguishes three blocking error kinds. All of them are
// returned to the caller explicitly; handlers map them to HTTP statuses.

// ValidationError reports malformed or out-of-range input. The operation is
// rejected before any state change and the message names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StateError reports a mutation attempted while the estimate status forbids
// it. The estimate is left unchanged.
type StateError struct {
	Status    EstimateStatus
	Operation string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("operation %q not permitted while estimate is %s", e.Operation, e.Status)
}

// RefIntegrityError reports a delete blocked by existing references. The
// counts let the caller offer a resolution path (reassign, then retry).
type RefIntegrityError struct {
	Entity         string
	BlockingStages int
	BlockingItems  int
}

func (e *RefIntegrityError) Error() string {
	return fmt.Sprintf("cannot delete %s: %d stages and %d line items still reference it",
		e.Entity, e.BlockingStages, e.BlockingItems)
}
