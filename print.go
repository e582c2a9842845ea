package colview

// colorReset terminates a colored span.
const colorReset = "\x1b[0m"

// isNextColumnsEmpty reports whether every visible column after cl is empty
// on ln. Used by minout to skip trailing padding.
func (tb *Table) isNextColumnsEmpty(cl *Column, ln *Line) bool {
	if cl == nil {
		return false
	}
	if tb.isLastColumn(cl) {
		return true
	}
	if ln == nil {
		return false
	}
	for _, next := range tb.cols[cl.seqnum+1:] {
		if next.Hidden {
			continue
		}
		if next.Tree {
			return false
		}
		if ln.cellText(next) != "" {
			return false
		}
	}
	return true
}

func (tb *Table) hasPendingData() bool {
	for _, cl := range tb.cols {
		if !cl.Hidden && cl.hasPending() {
			return true
		}
	}
	return false
}

// printEmptyCell emits padding, or tree art, instead of data for cl.
func (tb *Table) printEmptyCell(cl *Column, ln *Line, bufsz int) {
	lenPad := 0 // screen cells, not bytes

	// tree ascii-art rather than padding
	if ln != nil && cl.Tree {
		if ln.parent == nil {
			// only draw the vertical if followed by a child
			if ln.hasChildren() {
				tb.wr.WriteString(tb.vertSymbol())
				lenPad = displayWidth(tb.vertSymbol())
			}
		} else {
			// same art as if we were drawing the line's corner
			art := newBuffer(bufsz)
			tb.treeArtToBuffer(ln, art)
			if ln.hasChildren() && tb.hasPendingData() {
				art.appendString(tb.vertSymbol())
			}
			if _, data, w := tb.safeParts(art, ""); data != "" && w > 0 {
				tb.wr.WriteString(data)
				lenPad = w
			}
		}
	}

	// minout -- don't fill
	if tb.minOut && tb.isNextColumnsEmpty(cl, ln) {
		return
	}

	// default -- fill except last column
	if !tb.maxOut && tb.isLastColumn(cl) {
		return
	}

	for ; lenPad < cl.width; lenPad++ {
		tb.wr.WriteString(tb.cellPadding())
	}
	if !tb.isLastColumn(cl) {
		tb.wr.WriteString(tb.colsep)
	}
}

// printNewlinePadding fills the start of a fresh output line with padding or
// tree art. Needed after a long non-truncated column pushed the following
// columns onto the next line.
func (tb *Table) printNewlinePadding(cl *Column, ln *Line, bufsz int) {
	tb.wr.WriteString(tb.linesep)
	tb.termLinesUsed++

	for _, c := range tb.cols[:cl.seqnum+1] {
		if c.Hidden {
			continue
		}
		tb.printEmptyCell(c, ln, bufsz)
	}
}

// printPendingData emits the next chunk of cl's deferred cell text.
func (tb *Table) printPendingData(cl *Column, ln *Line, ce *Cell) error {
	if !cl.hasPending() {
		return nil
	}
	width := cl.width
	if width == 0 {
		return ErrInvalidWidth
	}

	color := tb.cellColor(cl, ln, ce)
	data := cl.pending
	var lenw, consumed int

	if cl.isCustomWrap() {
		if chunk, rest := cl.NextChunk(data); rest != "" {
			consumed = len(data) - len(rest)
			data = chunk
			lenw = displayWidth(chunk)
		} else {
			data = truncDisplay(data, width)
			lenw = displayWidth(data)
			consumed = len(data)
		}
	} else {
		data = truncDisplay(data, width)
		lenw = displayWidth(data)
		consumed = len(data)
	}

	if consumed > 0 {
		cl.stepPending(consumed)
	}

	if color != "" {
		tb.wr.WriteString(color)
	}
	tb.wr.WriteString(data)
	if color != "" {
		tb.wr.WriteString(colorReset)
	}

	// minout -- don't fill
	if tb.minOut && tb.isNextColumnsEmpty(cl, ln) {
		return tb.wr.err
	}

	// default -- fill except last column
	if !tb.maxOut && tb.isLastColumn(cl) {
		return tb.wr.err
	}

	for i := lenw; i < width; i++ {
		tb.wr.WriteString(tb.cellPadding())
	}
	if !tb.isLastColumn(cl) {
		tb.wr.WriteString(tb.colsep)
	}
	return tb.wr.err
}

func (tb *Table) printJSONData(cl *Column, name, data string, last bool) {
	switch cl.JSONType {
	case JSONString:
		tb.json.valueS(name, data, last)
	case JSONNumber:
		tb.json.valueRaw(name, data, last)
	case JSONBoolean:
		v := !(data == "" || data[0] == '0' || data[0] == 'N' || data[0] == 'n')
		tb.json.valueBool(name, v, last)
	case JSONArrayString, JSONArrayNumber:
		tb.json.arrayOpen(name)
		if !cl.isCustomWrap() {
			tb.json.valueS("", data, true)
		} else {
			for {
				chunk, rest := cl.NextChunk(data)
				if cl.JSONType == JSONArrayString {
					tb.json.valueS("", chunk, rest == "")
				} else {
					tb.json.valueRaw("", chunk, rest == "")
				}
				if rest == "" {
					break
				}
				data = rest
			}
		}
		tb.json.arrayClose(last)
	}
}

// printData emits one resolved cell through the active format.
func (tb *Table) printData(cl *Column, ln *Line, ce *Cell, buf *buffer) error {
	var name string
	if tb.format != Human {
		name = cl.Header.Text
	}

	isLast := tb.isLastColumn(cl)
	if isLast && tb.format == JSON && tb.isTree() && ln != nil && ln.hasChildren() {
		// "children": [] is the real last value
		isLast = false
	}

	switch tb.format {
	case Raw:
		tb.wr.WriteString(encodeNonblank(buf.data()))
		if !isLast {
			tb.wr.WriteString(tb.colsep)
		}
		return tb.wr.err

	case Export:
		tb.wr.WriteString(shellIdent(name))
		tb.wr.WriteString("=")
		tb.wr.WriteString(shellQuote(buf.data()))
		if !isLast {
			tb.wr.WriteString(tb.colsep)
		}
		return tb.wr.err

	case JSON:
		tb.printJSONData(cl, name, buf.data(), isLast)
		return tb.wr.err
	}

	// human format
	color := tb.cellColor(cl, ln, ce)

	// 'lenw' and 'width' count screen cells, not bytes
	art, rest, lenw := tb.safeParts(buf, cl.SafeChars)
	data := art + rest
	artBytes := len(art)
	width := cl.width
	right := cl.Right || (ce != nil && ce.Align == AlignRight)

	// custom multi-line cell
	if data != "" && cl.isCustomWrap() {
		if chunk, pend := cl.NextChunk(data); pend != "" {
			cl.setPending(pend)
			data = chunk
			lenw = displayWidth(chunk)
		}
	}

	if isLast && lenw < width && !tb.maxOut && !right {
		width = lenw
	}

	// truncate
	if lenw > width && cl.Trunc {
		data = truncDisplay(data, width)
		lenw = displayWidth(data)
	}

	// standard multi-line cell
	if lenw > width && cl.Wrap && !cl.isCustomWrap() {
		cl.setPending(data)
		cut := truncDisplay(data, width)
		if len(cut) > 0 {
			cl.stepPending(len(cut))
		}
		data = cut
		lenw = displayWidth(data)
	}

	if data != "" {
		switch {
		case right:
			if color != "" {
				tb.wr.WriteString(color)
			}
			for i := lenw; i < width; i++ {
				tb.wr.WriteString(tb.cellPadding())
			}
			tb.wr.WriteString(data)
			if color != "" {
				tb.wr.WriteString(colorReset)
			}
			lenw = width
		case color != "":
			// never colorize the tree ascii art
			if cl.Tree && artBytes > 0 && artBytes < len(data) {
				tb.wr.WriteString(data[:artBytes])
				data = data[artBytes:]
			}
			tb.wr.WriteString(color)
			tb.wr.WriteString(data)
			tb.wr.WriteString(colorReset)
		default:
			tb.wr.WriteString(data)
		}
	}

	// minout -- don't fill
	if tb.minOut && tb.isNextColumnsEmpty(cl, ln) {
		return tb.wr.err
	}

	// default -- fill except last column
	if !tb.maxOut && isLast {
		return tb.wr.err
	}

	for i := lenw; i < width; i++ {
		tb.wr.WriteString(tb.cellPadding())
	}

	if lenw > width && !cl.Trunc {
		// next column starts on the next line
		tb.printNewlinePadding(cl, ln, buf.size())
	} else if !isLast {
		tb.wr.WriteString(tb.colsep)
	}

	return tb.wr.err
}

// cellToBuffer merges the decoration prefix and the raw cell text of one
// (line, column) pair into buf. Structured formats express hierarchy
// structurally and never receive art.
func (tb *Table) cellToBuffer(ln *Line, cl *Column, buf *buffer) {
	buf.reset()
	text := ln.cellText(cl)

	if !cl.Tree {
		if text != "" {
			buf.appendString(text)
		}
		return
	}

	if cl.Groups && !tb.structured() {
		tb.groupsArtToBuffer(ln, buf)
	}

	if ln.parent != nil && !tb.structured() {
		tb.treeArtToBuffer(ln.parent, buf)
		if ln.isLastChild() {
			buf.appendString(tb.rightSymbol())
		} else {
			buf.appendString(tb.branchSymbol())
		}
	}

	if (ln.parent != nil || cl.Groups) && !tb.structured() {
		buf.setArtIndex()
	}

	if text != "" {
		buf.appendString(text)
	}
}

func (tb *Table) structured() bool { return tb.format == JSON || tb.format == YAML }

// printLine renders one line, then keeps appending synthetic extra lines
// while any column still has pending data.
func (tb *Table) printLine(ln *Line, buf *buffer) error {
	dbg.Debug().Int("line", ln.seqnum).Msg("printing line")

	pending := false
	for _, cl := range tb.cols {
		if cl.Hidden {
			continue
		}
		tb.cellToBuffer(ln, cl, buf)
		if err := tb.printData(cl, ln, ln.cellAt(cl), buf); err != nil {
			return err
		}
		if cl.hasPending() {
			pending = true
		}
	}

	// extra lines of the multi-line cells
	for pending {
		pending = false
		tb.wr.WriteString(tb.linesep)
		tb.termLinesUsed++
		for _, cl := range tb.cols {
			if cl.Hidden {
				continue
			}
			if cl.hasPending() {
				if err := tb.printPendingData(cl, ln, ln.cellAt(cl)); err != nil {
					return err
				}
				if cl.hasPending() {
					pending = true
				}
			} else {
				tb.printEmptyCell(cl, ln, buf.size())
			}
		}
	}

	return tb.wr.err
}
