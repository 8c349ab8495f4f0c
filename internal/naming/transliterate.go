package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transliterations maps code points whose NFKD decomposition is missing or
// wrong for filenames to their ASCII spelling. Multi-letter replacements keep
// the case of the first letter only (Ä -> Ae).
var transliterations = map[rune]string{
	// German
	'ä': "ae", 'Ä': "Ae",
	'ö': "oe", 'Ö': "Oe",
	'ü': "ue", 'Ü': "Ue",
	'ß': "ss", 'ẞ': "Ss",

	// Nordic and ligatures
	'æ': "ae", 'Æ': "Ae",
	'œ': "oe", 'Œ': "Oe",
	'ø': "o", 'Ø': "O",
	'þ': "th", 'Þ': "Th",
	'ð': "d", 'Ð': "D",

	// Central and eastern European letters without a decomposition
	'đ': "d", 'Đ': "D",
	'ł': "l", 'Ł': "L",
	'ħ': "h", 'Ħ': "H",
	'ı': "i", 'İ': "I",
	'ŧ': "t", 'Ŧ': "T",
	'ŋ': "ng", 'Ŋ': "Ng",
	'ĸ': "k",
	'ƒ': "f",
	'ǝ': "e", 'Ǝ': "E",
	'ə': "e", 'Ə': "E",
	'ʒ': "z", 'Ʒ': "Z",
	'ɛ': "e", 'Ɛ': "E",
	'ɔ': "o", 'Ɔ': "O",

	// Punctuation
	'‘': "'", '’': "'", '‚': "'", '‛': "'", '′': "'", 'ʼ': "'",
	'“': "\"", '”': "\"", '„': "\"", '‟': "\"", '″': "\"",
	'«': "<<", '»': ">>", '‹': "<", '›': ">",
	'‐': "-", '‑': "-", '‒': "-", '–': "-", '—': "-", '―': "-", '−': "-",
	'⁄': "-", '∕': "-",
	'•': "-", '·': "-",
	'¿': "?", '¡': "!",
	'§': "S",
	'¶': "P",

	// Symbols
	'€': "EUR", '£': "GBP", '¥': "JPY", '¢': "c",
	'©': "(c)", '®': "(R)", '℗': "(P)",
	'°': "deg",
	'×': "x", '÷': "-",
	'±': "+-",
	'µ': "u",
}

// Transliterate rewrites s to printable ASCII. Code points are resolved in
// order: printable ASCII passes, the table applies, then NFKD decomposition
// with combining marks removed; whatever remains non-ASCII is dropped. The
// path separator is never emitted.
func Transliterate(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isPrintableASCII(r) {
			writeSafe(&b, r)
			continue
		}
		if rep, ok := transliterations[r]; ok {
			b.WriteString(rep)
			continue
		}
		for _, d := range decompose(r) {
			if isPrintableASCII(d) {
				writeSafe(&b, d)
			} else if rep, ok := transliterations[d]; ok {
				b.WriteString(rep)
			}
		}
	}
	return b.String()
}

// decompose returns the compatibility decomposition of r without combining
// marks, e.g. 'é' -> "e", 'ﬁ' -> "fi", '½' -> "1⁄2".
func decompose(r rune) string {
	// transform.Chain is stateful; build one per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, string(r))
	if err != nil {
		return ""
	}
	return out
}

func writeSafe(b *strings.Builder, r rune) {
	if r == '/' {
		return
	}
	b.WriteRune(r)
}
