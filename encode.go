package colview

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// displayWidth returns the number of terminal cells s occupies.
func displayWidth(s string) int { return runewidth.StringWidth(s) }

// truncDisplay cuts s so it fits into w cells. When even the first rune is
// too wide it is kept anyway, so wrap loops always make progress.
func truncDisplay(s string, w int) string {
	out := runewidth.Truncate(s, w, "")
	if out == "" && s != "" && w > 0 {
		_, sz := utf8.DecodeRuneInString(s)
		out = s[:sz]
	}
	return out
}

// safeEncode escapes non-printable bytes as \x<hex> and reports the display
// width of the escaped result. Runes listed in safechars pass through
// unescaped.
func safeEncode(s, safechars string) (string, int) {
	var b strings.Builder
	width := 0
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		seg := s[i : i+sz]
		switch {
		case safechars != "" && strings.Contains(safechars, seg):
			b.WriteString(seg)
			width += runewidth.StringWidth(seg)
		case (r == utf8.RuneError && sz == 1) || !unicode.IsPrint(r):
			for j := 0; j < sz; j++ {
				fmt.Fprintf(&b, `\x%02x`, s[i+j])
				width += 4
			}
		default:
			b.WriteString(seg)
			width += runewidth.RuneWidth(r)
		}
		i += sz
	}
	return b.String(), width
}

func isBlank(s string) bool {
	return s == "" || s == " " || s == "\t"
}
