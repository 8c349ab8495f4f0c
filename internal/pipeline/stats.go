package pipeline

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total       int // Entries examined (excluded entries are not examined).
	Renamed     int // Renamed, or planned in a dry run.
	Unchanged   int // Already normalized; no output.
	Excluded    int // Matched an --exclude pattern; neither renamed nor descended.
	Collisions  int // Renames that needed a "_N" suffix.
	Repaired    int // Names that held invalid UTF-8.
	Failed      int // Renames or directory reads that failed.
	Interrupted bool
}

// OK reports whether every attempted operation succeeded.
func (s *RunStats) OK() bool { return s.Failed == 0 }
