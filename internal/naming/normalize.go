package naming

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode selects how far a name is normalized.
type Mode string

const (
	ModePreserve Mode = "preserve" // Repair encoding and control characters only (default).
	ModeASCII    Mode = "ascii"    // Additionally transliterate to printable ASCII.
)

// ParseMode converts a user-supplied mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModePreserve):
		return ModePreserve, nil
	case string(ModeASCII):
		return ModeASCII, nil
	default:
		return "", fmt.Errorf("invalid mode %q (use 'preserve' or 'ascii')", s)
	}
}

const (
	// ControlMarker replaces the span of a name that held control characters.
	ControlMarker = "withNull"
	// Placeholder is appended when normalization leaves nothing usable.
	Placeholder = "_"
	// MaxNameBytes is the longest name most filesystems accept (NAME_MAX).
	MaxNameBytes = 255
)

// Result is the outcome of normalizing one name. The flags record which
// repairs were needed so callers can report them.
type Result struct {
	Name      string
	Repaired  bool // Invalid UTF-8 bytes were dropped.
	Stripped  bool // Control characters were collapsed into ControlMarker.
	Fallback  bool // The stem vanished and Placeholder was substituted.
	Truncated bool // The stem was shortened to fit MaxNameBytes.
}

// Normalize computes the normalized form of a single path component.
// It never touches the filesystem and never returns "", "." or "..".
func Normalize(name string, mode Mode) Result {
	var r Result

	if !utf8.ValidString(name) {
		name = strings.ToValidUTF8(name, "")
		r.Repaired = true
	}

	// Everything from the first control character up to the extension of
	// the trailing segment collapses into one marker. The marker stands in
	// front of the tail so "a\x00.pdf" keeps ".pdf".
	if first := strings.IndexFunc(name, isControl); first >= 0 {
		last := strings.LastIndexFunc(name, isControl)
		_, ext := SplitExt(ControlMarker + name[last+1:])
		name = name[:first] + ControlMarker + ext
		r.Stripped = true
	}

	stem, ext := SplitExt(name)
	if mode == ModeASCII {
		stem = Transliterate(stem)
	}
	if stem == "" {
		stem = Placeholder
		r.Fallback = true
	}

	// The placeholder goes before the extension so "日.." keeps its ".".
	if joined := stem + ext; joined == "." || joined == ".." {
		stem += Placeholder
		r.Fallback = true
	}

	r.Name, r.Truncated = fit(stem, ext)
	return r
}

// Clean is Normalize without the repair flags.
func Clean(name string, mode Mode) string {
	return Normalize(name, mode).Name
}

// SplitExt splits name into stem and extension. The extension starts at the
// last dot, needs a non-dot character somewhere before it (".bashrc" has no
// extension) and must consist of printable ASCII only; otherwise the whole
// name is the stem.
func SplitExt(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || strings.Trim(name[:dot], ".") == "" {
		return name, ""
	}
	ext = name[dot:]
	for i := 0; i < len(ext); i++ {
		if !isPrintableASCII(rune(ext[i])) {
			return name, ""
		}
	}
	return name[:dot], ext
}

// fit joins stem and ext, trimming the stem on a rune boundary when the
// result would exceed MaxNameBytes.
func fit(stem, ext string) (string, bool) {
	if len(stem)+len(ext) <= MaxNameBytes {
		return stem + ext, false
	}
	if len(ext) >= MaxNameBytes {
		stem, ext = stem+ext, ""
	}
	budget := MaxNameBytes - len(ext)
	for budget > 0 && !utf8.RuneStart(stem[budget]) {
		budget--
	}
	return stem[:budget] + ext, true
}

func isControl(r rune) bool { return r < 0x20 || r == 0x7f }

func isPrintableASCII(r rune) bool { return r >= 0x20 && r <= 0x7e }
