package pipeline

import (
	"errors"
	"fmt"
)

// ErrTargetExists is returned when the proposed name unexpectedly exists on
// disk at rename time. Existing entries are never overwritten.
var ErrTargetExists = errors.New("target already exists")

// RenameError reports a rename that could not be applied. The entry is left
// under its original name and the walk continues.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }
