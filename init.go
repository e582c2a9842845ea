package colview

// fallbackBufSize is used when output is not a terminal and no line demands
// more.
const fallbackBufSize = 8192

func lineTextLen(ln *Line) int {
	sz := 0
	for i := range ln.cells {
		sz += len(ln.cells[i].Text)
	}
	return sz
}

// initializePrinting resolves symbols, terminal mode and buffer capacity,
// prepares group bookkeeping and runs the layout solver. It must precede
// the first printed line; on failure partially acquired resources are
// released.
func (tb *Table) initializePrinting() (*buffer, error) {
	dbg.Debug().Str("format", string(tb.format)).Msg("initialize printing")

	if tb.symbols == nil {
		tb.symbols = DefaultSymbols()
		tb.privSymbols = true
	} else {
		tb.privSymbols = false
	}

	if tb.format == Human {
		tb.detectTerminal()
	}

	bufsz := fallbackBufSize
	if tb.isTerm {
		if tb.termReduce > 0 && tb.termReduce < tb.termWidth {
			tb.termWidth -= tb.termReduce
			tb.termReduce = 0
		}
		bufsz = tb.termWidth
	}

	if !tb.isTerm || tb.format != Human || tb.isTree() {
		tb.headerRepeat = false
	}

	// estimate extra space needed for tree, JSON or other decoration
	extra := 0
	if tb.isTree() {
		extra += len(tb.lines) * len(tb.vertSymbol())
	}
	switch tb.format {
	case Raw:
		extra += len(tb.cols) // separators between columns
	case JSON:
		tb.json = newJSONWriter(tb.wr)
		extra += len(tb.lines) * 3 // indentation
	}
	if tb.format == JSON || tb.format == Export {
		for _, cl := range tb.visibleColumns() {
			extra += len(cl.Header.Text) + 2
		}
	}

	// the buffer must hold any single line plus its decoration
	for _, ln := range tb.lines {
		if sz := lineTextLen(ln) + extra; sz > bufsz {
			bufsz = sz
		}
	}
	tb.bufSize = bufsz + 1
	buf := newBuffer(tb.bufSize)

	// group members must be in the same order as the tree
	if tb.hasGroups() && tb.isTree() {
		tb.assignWalkOrder()
		tb.fixGroupOrder()
		tb.grpset = make([]*Group, tb.computeGrpsetSize())
	}

	if tb.format == Human {
		if err := tb.layout.Calculate(tb); err != nil {
			tb.cleanupPrinting()
			return nil, err
		}
	}

	return buf, nil
}

// cleanupPrinting releases per-pass state: privately installed symbols,
// pending cursors and group slots.
func (tb *Table) cleanupPrinting() {
	if tb.privSymbols {
		tb.symbols = nil
		tb.privSymbols = false
	}
	for _, cl := range tb.cols {
		cl.pending = ""
	}
	for _, g := range tb.groups {
		g.slot = -1
		g.state = stateNone
		g.finished = false
	}
	tb.grpset = nil
	tb.json = nil
}
