// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The Config value is threaded explicitly through the walker and
// the normalizer; nothing reads global state.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/backmassage/unifile/internal/naming"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Target directory (positional arg).
	TargetDir string

	// Normalization.
	Mode naming.Mode // Default: preserve.

	// Behavior flags.
	DryRun   bool
	Excludes []string // doublestar patterns relative to TargetDir.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional change-log path (append-only).
}

// DefaultConfig returns a Config with all defaults. Preserve is the default
// mode because it never rewrites a valid character.
func DefaultConfig() Config {
	return Config{
		Mode:      naming.ModePreserve,
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values, that exclude patterns
// parse, and that a target directory was given.
func (c *Config) Validate() error {
	switch c.Mode {
	case naming.ModePreserve, naming.ModeASCII:
		// valid
	default:
		return errors.New("invalid mode (use 'preserve' or 'ascii')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	for _, p := range c.Excludes {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}

	if c.TargetDir == "" {
		return errors.New("need exactly one target_dir")
	}
	return nil
}

// IsWithin reports whether path lies inside (or equals) dir. Both arguments
// must be absolute, symlink-resolved paths.
func IsWithin(dir, path string) bool {
	sep := string(filepath.Separator)
	return path == dir || strings.HasPrefix(path, strings.TrimSuffix(dir, sep)+sep)
}
