package colview

import "strings"

// printTitle emits the table title on its own line, aligned and padded to
// the terminal width (or 80 cells when not on a terminal). Titles are not
// part of the column grid and do not count toward header-repeat bookkeeping.
func (tb *Table) printTitle() error {
	if tb.title.Text == "" {
		return nil
	}

	dbg.Debug().Msg("printing title")

	text := tb.title.Text
	lenw := displayWidth(text)
	if !tb.noEncode {
		text, lenw = safeEncode(text, "")
		if text == "" {
			// title encoded to nothing -- ignore
			return nil
		}
	}

	width := 80
	if tb.isTerm {
		width = tb.termWidth
	}

	pad := tb.titlePadding()
	align := tb.title.Align

	// no extra blank chars after a left-aligned title, same as the last
	// column of the table
	if align == AlignLeft && lenw < width && !tb.maxOut && isBlank(pad) {
		width = lenw
	}

	if lenw > width {
		text = truncDisplay(text, width)
		lenw = displayWidth(text)
	}

	out := alignPad(text, lenw, width, align, pad)

	color := ""
	if tb.colorsWanted && tb.title.Color != "" {
		color = tb.title.Color
	}
	if color != "" {
		tb.wr.WriteString(color)
	}
	tb.wr.WriteString(out)
	if color != "" {
		tb.wr.WriteString(colorReset)
	}
	tb.wr.WriteString("\n")

	return tb.wr.err
}

// alignPad pads s (lenw cells wide) to width cells with the pad glyph.
func alignPad(s string, lenw, width int, align Alignment, pad string) string {
	n := width - lenw
	if n <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(pad, n) + s
	case AlignCenter:
		left := n / 2
		return strings.Repeat(pad, left) + s + strings.Repeat(pad, n-left)
	default:
		return s + strings.Repeat(pad, n)
	}
}
