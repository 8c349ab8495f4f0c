package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into normalization, behavior, display, and utility.
// Negated flags (e.g. --no-color) are applied after parsing so Config defaults hold unless set.

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/backmassage/unifile/internal/naming"
)

const longHelp = `unifile renames files and directories whose names contain invalid UTF-8,
control characters or (in ascii mode) non-ASCII characters. Entries are
processed bottom-up so renaming a directory never invalidates its children.

Modes:
  preserve  repair encoding and control characters, keep valid non-ASCII (default)
  ascii     additionally transliterate to printable ASCII (ü -> ue, é -> e, ß -> ss)

Exit codes:
  0  success (including runs with nothing to rename)
  1  usage error or target missing / not a directory
  2  one or more renames failed

Examples:
  unifile --dry-run ~/Music
  unifile -m ascii -l renames.log /srv/share
  unifile -m ascii -x '**/.git' -x 'node_modules' ./project`

// ParseFlags parses args (without the program name) into cfg. It reports
// false when --help or --version was handled and the caller should exit
// successfully without running. Help and version text go to out.
func ParseFlags(cfg *Config, args []string, version string, out io.Writer) (bool, error) {
	var negated negatedFlags
	proceed := false

	cmd := &cobra.Command{
		Use:           "unifile [flags] <target_dir>",
		Short:         "Normalize problematic characters in file and directory names",
		Long:          longHelp,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          parsePositionalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyNegatedFlags(cfg, &negated)
			cfg.TargetDir = NormalizeDirArg(args[0])
			proceed = true
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetVersionTemplate("unifile v{{.Version}}\n")

	fs := cmd.Flags()
	fs.SortFlags = false
	defineNormalizationFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs)

	if err := cmd.Execute(); err != nil {
		return false, err
	}
	return proceed, nil
}

// negatedFlags holds boolean flags that are applied after parsing.
type negatedFlags struct {
	forceColor bool
	noColor    bool
}

// defineNormalizationFlags registers -m/--mode.
func defineNormalizationFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.VarP(&modeValue{&cfg.Mode}, "mode", "m", "Normalization mode: preserve | ascii")
}

// defineBehaviorFlags registers dry-run, log-file and exclude.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; do not rename anything")
	fs.StringVarP(&cfg.LogFile, "log-file", "l", "", "Append change records to file")
	fs.StringArrayVarP(&cfg.Excludes, "exclude", "x", nil, "Skip entries matching glob (relative to target; repeatable)")
}

// defineDisplayFlags registers --color, --no-color and verbose.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
}

// defineUtilityFlags registers -V/--version. cobra handles the flag itself
// once it exists; -h/--help is added by cobra.
func defineUtilityFlags(fs *pflag.FlagSet) {
	fs.BoolP("version", "V", false, "Print version and exit")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs requires exactly one target directory.
func parsePositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("need exactly one target_dir")
	}
	if strings.TrimSpace(args[0]) == "" {
		return errors.New("target_dir must not be empty")
	}
	return nil
}

// pflag.Value adapter so naming.Mode can be used with fs.VarP.

type modeValue struct{ p *naming.Mode }

func (m *modeValue) String() string { return string(*m.p) }
func (m *modeValue) Type() string   { return "preserve|ascii" }
func (m *modeValue) Set(s string) error {
	mode, err := naming.ParseMode(s)
	if err != nil {
		return fmt.Errorf("invalid mode %q (use 'preserve' or 'ascii')", s)
	}
	*m.p = mode
	return nil
}
