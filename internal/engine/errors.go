package engine

import "fmt"

// SetError ties a failure to its position in a batch.
type SetError struct {
	Index int
	Err   error
}

func (e *SetError) Error() string { return fmt.Sprintf("set %d: %v", e.Index, e.Err) }

func (e *SetError) Unwrap() error { return e.Err }
