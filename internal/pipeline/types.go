package pipeline

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Entry is one filesystem entry discovered during a walk.
type Entry struct {
	Path      string // Full path as visited (parent not yet renamed).
	Parent    string
	Name      string // Raw name; may hold invalid UTF-8.
	Depth     int    // 1 for direct children of the root.
	IsDir     bool   // Real directory (symlinks to directories are false).
	IsSymlink bool
}

func newEntry(parent string, d fs.DirEntry, depth int) Entry {
	return Entry{
		Path:      filepath.Join(parent, d.Name()),
		Parent:    parent,
		Name:      d.Name(),
		Depth:     depth,
		IsDir:     d.IsDir(),
		IsSymlink: d.Type()&fs.ModeSymlink != 0,
	}
}

// Kind returns "directory", "symlink" or "file" for log messages.
func (e Entry) Kind() string {
	switch {
	case e.IsDir:
		return "directory"
	case e.IsSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// RenamePlan pairs an entry's current path with its proposed path.
type RenamePlan struct {
	Entry Entry
	From  string
	To    string
}

// Validate checks that the plan only changes the final path segment.
func (p RenamePlan) Validate() error {
	if filepath.Dir(p.From) != filepath.Dir(p.To) {
		return fmt.Errorf("plan moves %q out of its directory", p.From)
	}
	base := filepath.Base(p.To)
	if base == "." || base == ".." || strings.ContainsRune(base, filepath.Separator) {
		return fmt.Errorf("plan for %q has invalid target name %q", p.From, base)
	}
	return nil
}

// NoOp reports whether the plan would leave the entry unchanged.
func (p RenamePlan) NoOp() bool { return p.From == p.To }
