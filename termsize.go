package colview

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// detectTerminal resolves terminal mode for human output and, unless the
// caller fixed the geometry, queries the device size.
func (tb *Table) detectTerminal() {
	var f *os.File
	if file, ok := tb.out.(*os.File); ok {
		f = file
	}

	switch tb.termForce {
	case TermForceNever:
		tb.isTerm = false
	case TermForceAlways:
		tb.isTerm = true
	default:
		tb.isTerm = f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}

	if !tb.isTerm || tb.termSizeSet || f == nil {
		return
	}
	if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		tb.termWidth = w
		tb.termHeight = h
	}
}
