package naming

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// CollisionResolver tracks the names claimed inside one directory and
// resolves duplicates by appending "_N" before the extension. Every name
// present when the resolver is created owns itself. All methods are
// goroutine-safe.
type CollisionResolver struct {
	mu     sync.Mutex
	owners map[string]string // claimed name → original name that owns it
}

// NewCollisionResolver creates a resolver seeded with the names currently
// present in the directory.
func NewCollisionResolver(existing []string) *CollisionResolver {
	cr := &CollisionResolver{owners: make(map[string]string, len(existing))}
	for _, name := range existing {
		cr.owners[name] = name
	}
	return cr
}

// Resolve returns the name the entry currently called original should take.
// If requested is unclaimed (or already owned by original) it is returned
// as-is; otherwise the first free "stem_N.ext" variant is returned and
// collided is true. The chosen name is claimed and original's own claim is
// released.
func (cr *CollisionResolver) Resolve(original, requested string) (name string, collided bool) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if requested == original {
		return requested, false
	}

	owner, exists := cr.owners[requested]
	if !exists || owner == original {
		cr.claim(original, requested)
		return requested, false
	}

	stem, ext := SplitExt(requested)
	for n := 1; ; n++ {
		suffix := fmt.Sprintf("_%d", n)
		candidate := trimForSuffix(stem, ext, suffix) + suffix + ext
		if _, taken := cr.owners[candidate]; !taken {
			cr.claim(original, candidate)
			return candidate, true
		}
	}
}

// Release undoes a claim made by Resolve, e.g. after the rename failed, so
// original owns its own name again.
func (cr *CollisionResolver) Release(original, claimed string) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.owners[claimed] == original {
		delete(cr.owners, claimed)
	}
	cr.owners[original] = original
}

// Taken reports whether name is currently claimed.
func (cr *CollisionResolver) Taken(name string) bool {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	_, ok := cr.owners[name]
	return ok
}

func (cr *CollisionResolver) claim(original, name string) {
	if cr.owners[original] == original {
		delete(cr.owners, original)
	}
	cr.owners[name] = original
}

// trimForSuffix shortens stem on a rune boundary so that stem+suffix+ext
// still fits MaxNameBytes.
func trimForSuffix(stem, ext, suffix string) string {
	keep := MaxNameBytes - len(suffix) - len(ext)
	if keep >= len(stem) {
		return stem
	}
	if keep <= 0 {
		return ""
	}
	for keep > 0 && !utf8.RuneStart(stem[keep]) {
		keep--
	}
	return stem[:keep]
}
