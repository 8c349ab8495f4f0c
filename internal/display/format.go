package display

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/backmassage/unifile/internal/term"
)

// FormatRename returns the human-readable line for one rename plan:
// "from → to". Paths are passed through [QuoteIfNeeded].
func FormatRename(from, to string) string {
	return QuoteIfNeeded(from) + " " + term.Faint.Render("→") + " " + QuoteIfNeeded(to)
}

// QuoteIfNeeded returns s unchanged unless it holds invalid UTF-8, control
// characters or a leading double quote, in which case it is Go-quoted so
// the value stays on one line and round-trips through strconv.Unquote.
func QuoteIfNeeded(s string) string {
	if !utf8.ValidString(s) || strings.HasPrefix(s, `"`) ||
		strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return strconv.Quote(s)
	}
	return s
}

// FormatCount returns "1 entry" / "3 entries" style labels.
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
