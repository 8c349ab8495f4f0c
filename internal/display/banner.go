package display

import (
	"fmt"
	"io"

	"github.com/backmassage/unifile/internal/term"
)

const banner = `             _  __ _ _
 _   _ _ __ (_)/ _(_) | ___
| | | | '_ \| | |_| | |/ _ \
| |_| | | | | |  _| | |  __/
 \__,_|_| |_|_|_| |_|_|\___|`

// PrintBanner writes the ASCII art banner to w, magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Magenta.Render(banner))
}
