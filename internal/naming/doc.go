// Package naming turns one filename into its normalized form and resolves
// collisions between normalized siblings.
//
// Normalize is a pure function of (name, Mode):
//
//  1. Invalid UTF-8 bytes are dropped.
//  2. C0 control characters and DEL collapse into the "withNull" marker.
//  3. In ModeASCII the stem is transliterated to printable ASCII using a
//     static table, then NFKD decomposition with combining marks removed.
//
// A printable-ASCII extension is never rewritten. A name is never returned
// empty: stems that vanish get the "_" placeholder.
//
// CollisionResolver tracks the names claimed inside one directory and
// appends "_N" before the extension when two entries normalize to the same
// name.
package naming
