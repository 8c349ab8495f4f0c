// Package term resolves the color profile and holds the lipgloss styles used
// for terminal output.
//
// Styles are package-level variables because several packages (logging,
// display) render with them. [Configure] selects the color profile once
// during startup; with colors disabled every style renders plain text.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/unifile/internal/config"
)

// Styles keyed by intent. They are plain until Configure enables colors.
var (
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	Blue    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	Cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	Magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	Faint   = lipgloss.NewStyle().Faint(true)
)

var enabled bool

// Configure resolves the color mode and sets the lipgloss color profile.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
