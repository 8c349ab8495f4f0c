// Package pipeline walks the target directory bottom-up, plans a rename for
// every entry whose name is not already normalized, applies it (unless dry
// run), and reports each decision.
//
// Flow of [Run]:
//
//	check.Root → walkDir(root) → for each entry, sorted by name:
//	    exclude? → recurse into directories first → naming.Normalize →
//	    CollisionResolver.Resolve → rename (or report only) → record
//
// Children are always renamed before their parent, so a directory rename
// never invalidates a path that is still to be visited. Per-entry failures
// are logged, recorded and counted; only an invalid root aborts the run.
package pipeline
