package colview

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// encodeNonblank renders s for raw output. Blanks and non-printable bytes
// are emitted as \x<hex> escapes so fields never contain separators.
func encodeNonblank(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == ' ' || r == '\t':
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case (r == utf8.RuneError && sz == 1) || !unicode.IsPrint(r):
			for j := 0; j < sz; j++ {
				fmt.Fprintf(&b, `\x%02x`, s[i+j])
			}
		default:
			b.WriteString(s[i : i+sz])
		}
		i += sz
	}
	return b.String()
}

// shellIdent converts a column header into a shell-safe identifier. A
// trailing '%' becomes the literal "PCT", other non-alphanumerics become
// '_', and a leading digit is prefixed with '_'.
func shellIdent(s string) string {
	pct := false
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		pct = true
	}
	var b strings.Builder
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		b.WriteByte('_')
	}
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if pct {
		b.WriteString("PCT")
	}
	return b.String()
}

// shellQuote double-quotes s for shell consumption, escaping ", \, $ and
// backtick and encoding non-printable bytes. The result re-parses to the
// original value by any POSIX word splitter.
func shellQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"' || r == '\\' || r == '$' || r == '`':
			b.WriteByte('\\')
			b.WriteRune(r)
		case (r == utf8.RuneError && sz == 1) || (!unicode.IsPrint(r) && r != ' '):
			for j := 0; j < sz; j++ {
				fmt.Fprintf(&b, `\x%02x`, s[i+j])
			}
		default:
			b.WriteString(s[i : i+sz])
		}
		i += sz
	}
	b.WriteByte('"')
	return b.String()
}
