package colview

// treeArtToBuffer appends the connector prefix for ln's ancestor chain: one
// unit per ancestor, blank when that ancestor was the last among its
// siblings, vertical otherwise. Depth is bounded by the tree, which the
// model keeps acyclic.
func (tb *Table) treeArtToBuffer(ln *Line, buf *buffer) {
	if ln.parent == nil {
		return
	}
	tb.treeArtToBuffer(ln.parent, buf)
	if ln.isLastChild() {
		buf.appendString("  ")
	} else {
		buf.appendString(tb.vertSymbol())
	}
}

// grpsetIsEmpty reports whether every slot entry from idx on is free, and
// how many entries that covers.
func (tb *Table) grpsetIsEmpty(idx int) (bool, int) {
	rest := 0
	for i := idx; i < len(tb.grpset); i++ {
		if tb.grpset[i] != nil {
			return false, 0
		}
		rest++
	}
	return true, rest
}

// groupsArtToBuffer draws the multi-column group connector art: one chunk
// per art column, closed out with horizontal glyphs once no group branch
// remains active to the right. On the sizing pre-pass the group set exists
// but nothing is drawn.
func (tb *Table) groupsArtToBuffer(ln *Line, buf *buffer) {
	if !tb.hasGroups() {
		return
	}
	dbg.Debug().Int("line", ln.seqnum).Msg("printing groups chart")

	if tb.isDummyPrint {
		return
	}

	filled := false
	filler := tb.cellPadding()

	for i := 0; i < len(tb.grpset); i += grpsetChunk {
		g := tb.grpset[i]
		if g == nil {
			buf.appendNTimes(grpsetChunk, tb.cellPadding())
			continue
		}

		switch g.state {
		case stateFirstMember:
			buf.appendString(tb.grpFirstSymbol())
		case stateMiddleMember:
			buf.appendString(tb.grpMiddleSymbol())
		case stateLastMember:
			buf.appendString(tb.grpLastSymbol())
		case stateContMembers:
			buf.appendString(tb.grpVertSymbol())
			buf.appendNTimes(2, filler)
		case stateMiddleChild:
			buf.appendString(filler)
			buf.appendString(tb.grpMChildSymbol())
			if empty, rest := tb.grpsetIsEmpty(i + grpsetChunk); empty {
				buf.appendNTimes(rest+1, tb.grpHorzSymbol())
				filled = true
			}
			filler = tb.grpHorzSymbol()
		case stateLastChild:
			buf.appendString(tb.cellPadding())
			buf.appendString(tb.grpLChildSymbol())
			if empty, rest := tb.grpsetIsEmpty(i + grpsetChunk); empty {
				buf.appendNTimes(rest+1, tb.grpHorzSymbol())
				filled = true
			}
			filler = tb.grpHorzSymbol()
		case stateContChildren:
			buf.appendString(filler)
			buf.appendString(tb.grpVertSymbol())
			buf.appendString(filler)
		}

		if filled {
			break
		}
	}

	if !filled {
		buf.appendString(filler)
	}
}
