// Command unifile normalizes the names of every file and directory under a
// target directory.
//
// It parses flags, validates the configuration and the target, opens the
// optional change log and runs the rename pipeline bottom-up.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/backmassage/unifile/internal/check"
	"github.com/backmassage/unifile/internal/config"
	"github.com/backmassage/unifile/internal/display"
	"github.com/backmassage/unifile/internal/logging"
	"github.com/backmassage/unifile/internal/pipeline"
	"github.com/backmassage/unifile/internal/report"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitUsage   = 1 // Bad flags or an invalid target directory.
	exitPartial = 2 // The run finished but some renames failed.
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns its exit code. Console output
// goes to stdout and stderr.
func run(args []string, stdout, stderr io.Writer) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	cfg := config.DefaultConfig()
	proceed, err := config.ParseFlags(&cfg, args, version, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "unifile: %v\n", err)
		fmt.Fprintln(stderr, "Try 'unifile --help' for more information.")
		return exitUsage
	}
	if !proceed {
		return exitOK // --help or --version
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "unifile: %v\n", err)
		return exitUsage
	}

	log := logging.NewLogger(&cfg, stdout, stderr)
	if log.Verbose() {
		display.PrintBanner(stdout)
		log.Debug("unifile v%s (%s)", version, commit)
	}

	// Phase 2: Pre-flight. The target is checked before the change log is
	// opened so an invalid target leaves no trace on disk.
	root, err := check.Root(cfg.TargetDir)
	if err != nil {
		log.Error("%v", err)
		return exitUsage
	}

	changes, err := report.Open(cfg.LogFile)
	if err != nil {
		log.Error("Cannot open change log: %v", err)
		return exitUsage
	}
	defer changes.Close()

	if err := changes.Begin(report.Header{
		Time:   time.Now(),
		Mode:   cfg.Mode,
		DryRun: cfg.DryRun,
		Root:   root,
	}); err != nil {
		log.Error("Cannot write change log: %v", err)
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// walk stops between entries.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current entry…")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Walk and rename.
	stats, err := pipeline.Run(ctx, &cfg, log, changes)
	if err != nil {
		log.Error("%v", err)
		return exitUsage
	}
	if err := changes.End(stats.Summary()); err != nil {
		log.Error("Cannot write change log: %v", err)
	}

	if !stats.OK() {
		return exitPartial
	}
	return exitOK
}
