// Package lifecycle implements the application review state machine.
package lifecycle

import (
	"fmt"

	"github.com/mikhail/talenthub/internal/types"
)

// ErrInvalidTransition indicates the requested action is not defined for
// the application's current status.
type ErrInvalidTransition struct {
	From   types.ApplicationStatus
	Action Action
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s application in status %s", e.Action, e.From)
}

// ErrNoteTooLong indicates a transition note exceeds the allowed length.
type ErrNoteTooLong struct {
	Length int
}

func (e *ErrNoteTooLong) Error() string {
	return fmt.Sprintf("note length %d exceeds maximum of %d characters", e.Length, MaxNoteLength)
}
