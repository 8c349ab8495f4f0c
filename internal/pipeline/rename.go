package pipeline

import (
	"errors"
	"io/fs"
	"os"
)

// apply performs one planned rename without ever replacing an existing entry.
func apply(p RenamePlan) error {
	if err := p.Validate(); err != nil {
		return &RenameError{From: p.From, To: p.To, Err: err}
	}
	if err := renameNoReplace(p.From, p.To); err != nil {
		return &RenameError{From: p.From, To: p.To, Err: err}
	}
	return nil
}

// renameChecked is the portable fallback: check for the target, then
// rename. The window between the two calls is accepted; concurrent
// modification of the tree is unsupported.
func renameChecked(from, to string) error {
	if _, err := os.Lstat(to); err == nil {
		return ErrTargetExists
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(from, to)
}
