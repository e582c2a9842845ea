package colview

// Layouter assigns every visible column its final render width. It runs
// exactly once per human-format render pass, before the first line is
// printed; widths are immutable afterwards.
type Layouter interface {
	Calculate(tb *Table) error
}

// ContentLayout is the default width solver: each column gets the width of
// its widest content (header included, tree art included), raised to the
// column's WidthHint, then shrunk to the terminal budget by reducing the
// widest truncatable or wrappable columns.
type ContentLayout struct{}

// Calculate implements Layouter.
func (ContentLayout) Calculate(tb *Table) error {
	buf := newBuffer(tb.bufSize)

	tb.isDummyPrint = true
	defer func() { tb.isDummyPrint = false }()

	for _, cl := range tb.visibleColumns() {
		w := displayWidth(cl.Header.Text)
		if cl.Groups && tb.isTree() && cl.Tree {
			w += len(tb.grpset) + 1
		}
		for _, ln := range tb.lines {
			tb.cellToBuffer(ln, cl, buf)
			if _, _, cw := tb.safeParts(buf, cl.SafeChars); cw > w {
				w = cw
			}
		}
		if cl.WidthHint > w {
			w = cl.WidthHint
		}
		cl.width = w
	}

	if tb.isTerm {
		tb.reduceToTermWidth()
	}

	dbg.Debug().Int("termwidth", tb.termWidth).Msg("layout calculated")
	return nil
}

// reduceToTermWidth shrinks truncatable and wrappable columns, widest first,
// until the table fits the terminal width.
func (tb *Table) reduceToTermWidth() {
	cols := tb.visibleColumns()
	sepw := displayWidth(tb.colsep)

	total := func() int {
		n := 0
		for i, cl := range cols {
			n += cl.width
			if i > 0 {
				n += sepw
			}
		}
		return n
	}

	for total() > tb.termWidth {
		var widest *Column
		for _, cl := range cols {
			if !cl.Trunc && !cl.Wrap && !cl.isCustomWrap() {
				continue
			}
			if widest == nil || cl.width > widest.width {
				widest = cl
			}
		}
		if widest == nil || widest.width <= 1 {
			break
		}
		over := total() - tb.termWidth
		w := widest.width - over
		if w < 1 {
			w = 1
		}
		widest.width = w
	}
}
