package pipeline

import (
	"context"

	"github.com/backmassage/unifile/internal/check"
	"github.com/backmassage/unifile/internal/config"
	"github.com/backmassage/unifile/internal/display"
	"github.com/backmassage/unifile/internal/logging"
	"github.com/backmassage/unifile/internal/report"
)

// Recorder receives one record per rename plan. *report.Log implements it.
type Recorder interface {
	Record(status report.Status, from, to string) error
}

// Run is the top-level entry point. It validates the target directory,
// walks it bottom-up renaming every entry whose name is not already
// normalized, and returns aggregate stats. rec may be nil.
//
// The only error returned is an [check.InvalidRootError]; per-entry
// failures are logged, recorded and counted in RunStats.Failed.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, rec Recorder) (RunStats, error) {
	var stats RunStats

	root, err := check.Root(cfg.TargetDir)
	if err != nil {
		return stats, err
	}

	w := &walker{
		ctx:   ctx,
		cfg:   cfg,
		log:   log,
		rec:   rec,
		root:  root,
		stats: &stats,
	}
	if cfg.LogFile != "" {
		if p, err := check.ResolveFile(cfg.LogFile); err == nil && config.IsWithin(root, p) {
			w.skip = p
			log.Debug("Change log lies inside the target; it will not be renamed")
		}
	}

	logBatchHeader(cfg, log, root)
	w.walkDir(root, 1)
	if stats.Interrupted {
		log.Warn("Interrupted; remaining entries were left untouched")
	}
	logSummary(cfg, log, &stats)
	return stats, nil
}

// Summary converts the stats into the change-log summary line.
func (s *RunStats) Summary() report.Summary {
	return report.Summary{
		Renamed:   s.Renamed,
		Unchanged: s.Unchanged,
		Excluded:  s.Excluded,
		Failed:    s.Failed,
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, root string) {
	log.Info("Target: %s", display.QuoteIfNeeded(root))
	log.Info("Mode: %s", cfg.Mode)
	if cfg.DryRun {
		log.Info("Dry run: no entry will be renamed")
	}
	for _, p := range cfg.Excludes {
		log.Debug("Exclude: %s", p)
	}
	if cfg.LogFile != "" {
		log.Info("Change log: %s", display.QuoteIfNeeded(cfg.LogFile))
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	verb := "renamed"
	if cfg.DryRun {
		verb = "to rename"
	}
	log.Info("==============================")
	log.Info("Done: %s examined, %d %s, %d unchanged, %d excluded, %d failed",
		display.FormatCount(stats.Total, "entry", "entries"),
		stats.Renamed, verb, stats.Unchanged, stats.Excluded, stats.Failed)
	if stats.Collisions > 0 {
		log.Warn("  Name collisions resolved with a numeric suffix: %d", stats.Collisions)
	}
	if stats.Repaired > 0 {
		log.Info("  Names repaired from invalid UTF-8: %d", stats.Repaired)
	}
	switch {
	case stats.Failed > 0:
		log.Error("%s could not be renamed", display.FormatCount(stats.Failed, "entry", "entries"))
	case stats.Interrupted:
		log.Warn("Run was interrupted before completion")
	default:
		log.Success("All names normalized")
	}
}
