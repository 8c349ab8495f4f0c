package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/backmassage/unifile/internal/config"
	"github.com/backmassage/unifile/internal/display"
	"github.com/backmassage/unifile/internal/logging"
	"github.com/backmassage/unifile/internal/naming"
	"github.com/backmassage/unifile/internal/report"
)

// walker carries the state of one run through the recursion.
type walker struct {
	ctx    context.Context
	cfg    *config.Config
	log    *logging.Logger
	rec    Recorder
	root   string
	skip   string // resolved change-log path when it lies inside root
	stats  *RunStats
	recErr bool
}

// walkDir processes every entry of dir in name order. Directories are
// descended into before their own rename, so children are always handled
// while the parent path is still valid.
func (w *walker) walkDir(dir string, depth int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// ReadDir returns what it read before failing; keep going with that.
		w.stats.Failed++
		w.log.Error("Cannot read directory %s: %v", display.QuoteIfNeeded(w.rel(dir)), err)
		w.record(report.StatusError, dir, dir)
	}

	names := make([]string, len(entries))
	for i, d := range entries {
		names[i] = d.Name()
	}
	resolver := naming.NewCollisionResolver(names)

	for _, d := range entries {
		if w.interrupted() {
			return
		}
		e := newEntry(dir, d, depth)
		if w.excluded(e) {
			w.stats.Excluded++
			w.log.Debug("Excluded %s: %s", e.Kind(), display.QuoteIfNeeded(w.rel(e.Path)))
			continue
		}
		if e.IsDir {
			w.walkDir(e.Path, depth+1)
			if w.interrupted() {
				return
			}
		}
		w.visit(e, resolver)
	}
}

// visit plans, applies and reports the rename of a single entry.
func (w *walker) visit(e Entry, resolver *naming.CollisionResolver) {
	w.stats.Total++

	res := naming.Normalize(e.Name, w.cfg.Mode)
	plan := RenamePlan{Entry: e, From: e.Path, To: filepath.Join(e.Parent, res.Name)}
	if plan.NoOp() {
		w.stats.Unchanged++
		return
	}

	rel := w.rel(e.Path)
	if res.Repaired {
		w.stats.Repaired++
		w.log.Info("Repaired invalid UTF-8 in %s name: %s", e.Kind(), display.QuoteIfNeeded(rel))
	}
	if res.Stripped {
		w.log.Debug("Removed control characters from %s", display.QuoteIfNeeded(rel))
	}
	if res.Fallback {
		w.log.Warn("No usable characters left in %s; using placeholder name %q", display.QuoteIfNeeded(rel), res.Name)
	}
	if res.Truncated {
		w.log.Warn("Name too long after normalization, truncated: %s", display.QuoteIfNeeded(rel))
	}

	target, collided := resolver.Resolve(e.Name, res.Name)
	plan.To = filepath.Join(e.Parent, target)
	relTo := w.rel(plan.To)
	if collided {
		w.stats.Collisions++
		w.log.Warn("Name collision: %s already taken, using %s", res.Name, target)
	}

	if w.cfg.DryRun {
		w.stats.Renamed++
		w.log.Info("[DRY] Would rename %s: %s", e.Kind(), display.FormatRename(rel, relTo))
		w.record(report.StatusPlanned, plan.From, plan.To)
		return
	}

	if err := apply(plan); err != nil {
		resolver.Release(e.Name, target)
		w.stats.Failed++
		w.log.Error("Cannot rename %s: %v", display.FormatRename(rel, relTo), causeOf(err))
		w.record(report.StatusError, plan.From, plan.To)
		return
	}

	w.stats.Renamed++
	w.log.Success("Renamed %s: %s", e.Kind(), display.FormatRename(rel, relTo))
	w.record(report.StatusRenamed, plan.From, plan.To)
}

// excluded reports whether e matches an --exclude pattern or is the change
// log itself. Patterns are matched against the slash-separated path relative
// to root; patterns without a slash also match the bare name.
func (w *walker) excluded(e Entry) bool {
	if w.skip != "" && e.Path == w.skip {
		return true
	}
	rel := filepath.ToSlash(w.rel(e.Path))
	for _, p := range w.cfg.Excludes {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, e.Name); ok {
				return true
			}
		}
	}
	return false
}

func (w *walker) record(status report.Status, from, to string) {
	if w.rec == nil {
		return
	}
	if err := w.rec.Record(status, w.rel(from), w.rel(to)); err != nil && !w.recErr {
		w.recErr = true
		w.log.Error("Cannot write change log: %v", err)
	}
}

func (w *walker) interrupted() bool {
	if w.ctx.Err() != nil {
		w.stats.Interrupted = true
		return true
	}
	return false
}

// rel returns path relative to the root, or path itself when that fails.
func (w *walker) rel(path string) string {
	r, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return r
}

// causeOf strips the RenameError wrapper, whose paths are already shown.
func causeOf(err error) error {
	var re *RenameError
	if errors.As(err, &re) {
		return re.Err
	}
	return err
}
