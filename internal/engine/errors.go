package engine

import "fmt"

// StructuralError reports that a request referenced something that does
// not exist or is tagged in a way the engine does not recognize: a
// dangling ID, an unrecognized arc type, a malformed inhibitor
// orientation, or a selected_transition_id with no match. Structural
// errors are detected before any state is mutated and surface as a
// client-facing failure (spec §7).
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return e.Message
}

// NewStructuralError formats a StructuralError.
func NewStructuralError(format string, args ...interface{}) *StructuralError {
	return &StructuralError{Message: fmt.Sprintf(format, args...)}
}

// InvariantError reports that a firing would have violated a core
// invariant (a place going below zero tokens). This should be
// unreachable whenever the enablement check ran first and is treated as
// an internal bug rather than a client error: the marking prior to the
// failing firing is discarded and the offending transition is named in
// the diagnostic (spec §7).
type InvariantError struct {
	TransitionID string
	Message      string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated firing transition %s: %s", e.TransitionID, e.Message)
}

// NewInvariantError builds an InvariantError naming the offending transition.
func NewInvariantError(transitionID, format string, args ...interface{}) *InvariantError {
	return &InvariantError{TransitionID: transitionID, Message: fmt.Sprintf(format, args...)}
}
