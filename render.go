package colview

import "fmt"

func (tb *Table) wantRepeatHeader() bool {
	return !tb.headerRepeat || tb.headerNext <= tb.termLinesUsed
}

// printHeader emits the header row and schedules the next repeat. It is a
// no-op once printed (unless repeat is on), for headerless modes, and for
// tables with no lines.
func (tb *Table) printHeader(buf *buffer) error {
	if (tb.headerPrinted && !tb.headerRepeat) ||
		tb.noHeadings ||
		tb.format == Export ||
		tb.format == JSON ||
		len(tb.lines) == 0 {
		return nil
	}

	dbg.Debug().Msg("printing header")

	for _, cl := range tb.visibleColumns() {
		buf.reset()
		if cl.Groups && tb.isTree() && cl.Tree {
			// reserve room for the group art ahead of the header
			buf.appendNTimes(len(tb.grpset)+1, " ")
		}
		buf.appendString(cl.Header.Text)
		if err := tb.printData(cl, nil, &cl.Header, buf); err != nil {
			return err
		}
	}

	tb.wr.WriteString(tb.linesep)
	tb.termLinesUsed++

	tb.headerPrinted = true
	tb.headerNext = tb.termLinesUsed + tb.termHeight
	return tb.wr.err
}

// printRange prints lines in iterator order, managing JSON object nesting,
// inter-line separators and header repetition.
func (tb *Table) printRange(buf *buffer, lines []*Line) error {
	for i, ln := range lines {
		last := i == len(lines)-1

		if tb.format == JSON {
			tb.json.objectOpen("")
		}

		if err := tb.printLine(ln, buf); err != nil {
			return err
		}

		if tb.format == JSON {
			tb.json.objectClose(last)
		} else if !last && !tb.noLineSep {
			tb.wr.WriteString(tb.linesep)
			tb.termLinesUsed++
		}

		if !last && tb.wantRepeatHeader() {
			if err := tb.printHeader(buf); err != nil {
				return err
			}
		}
	}
	return tb.wr.err
}

// printTreeLine prints one line of a pre-order traversal and maintains the
// surrounding structure: the group set, JSON array/object nesting, and
// parent/child separators.
func (tb *Table) printTreeLine(ln *Line, buf *buffer) error {
	if tb.hasGroups() {
		tb.updateGrpset(ln)
	}

	if tb.format == JSON {
		tb.json.objectOpen("")
	}

	if err := tb.printLine(ln, buf); err != nil {
		return err
	}

	if ln.hasChildren() {
		if tb.format == JSON {
			tb.json.arrayOpen("children")
		} else {
			// between parent and child is a separator
			tb.wr.WriteString(tb.linesep)
			tb.termLinesUsed++
		}
		return tb.wr.err
	}

	if tb.format == JSON {
		// terminate all open last children
		cur := ln
		for {
			last := (cur.isChild() && cur.isLastChild()) ||
				(cur.parent == nil && tb.isLastTreeRoot(cur))
			tb.json.objectClose(last)
			if last && cur.isChild() {
				tb.json.arrayClose(last)
			}
			cur = cur.parent
			if cur == nil || !last {
				break
			}
		}
	} else if !tb.noLineSep && !tb.walkIsLast(ln) {
		tb.wr.WriteString(tb.linesep)
		tb.termLinesUsed++
	}

	return tb.wr.err
}

// walkIsLast reports whether ln is the final line of the whole traversal.
func (tb *Table) walkIsLast(ln *Line) bool {
	if ln.hasChildren() {
		return false
	}
	cur := ln
	for cur.parent != nil {
		if !cur.isLastChild() {
			return false
		}
		cur = cur.parent
	}
	return tb.isLastTreeRoot(cur)
}

func (tb *Table) printTree(buf *buffer) error {
	dbg.Debug().Msg("printing tree")

	var walk func(ln *Line) error
	walk = func(ln *Line) error {
		if err := tb.printTreeLine(ln, buf); err != nil {
			return err
		}
		for _, ch := range ln.children {
			if err := walk(ch); err != nil {
				return err
			}
		}
		return nil
	}
	for _, root := range tb.rootLines() {
		if err := walk(root); err != nil {
			return err
		}
	}
	return nil
}

// Render prints the whole table to the table's writer in the configured
// format. It may be called repeatedly; each call is one complete pass.
func (tb *Table) Render() error {
	if tb.printing {
		return ErrRenderInProgress
	}
	tb.printing = true
	defer func() { tb.printing = false }()

	if tb.out == nil {
		return fmt.Errorf("colview: nil output writer")
	}
	if tb.format == YAML {
		return tb.renderYAML()
	}

	tb.wr = &outWriter{w: tb.out}
	tb.termLinesUsed = 0
	tb.headerPrinted = false

	buf, err := tb.initializePrinting()
	if err != nil {
		return err
	}
	defer tb.cleanupPrinting()

	if tb.format == Human {
		if err := tb.printTitle(); err != nil {
			return err
		}
	}

	if tb.format == JSON {
		tb.json.rootOpen()
		tb.json.arrayOpen(tb.name)
	}

	if err := tb.printHeader(buf); err != nil {
		return err
	}

	if tb.isTree() {
		err = tb.printTree(buf)
	} else {
		err = tb.printRange(buf, tb.lines)
	}
	if err != nil {
		return err
	}

	if tb.format == JSON {
		tb.json.arrayClose(true)
		tb.json.rootClose()
	} else if len(tb.lines) > 0 {
		// terminate the final line
		tb.wr.WriteString(tb.linesep)
		tb.termLinesUsed++
	}

	return tb.wr.err
}

// RenderRange prints the flat slice of lines between from and to inclusive,
// without title or header. Structured formats are not supported because a
// partial document would not be well formed.
func (tb *Table) RenderRange(from, to *Line) error {
	if tb.printing {
		return ErrRenderInProgress
	}
	tb.printing = true
	defer func() { tb.printing = false }()

	if tb.structured() {
		return fmt.Errorf("%w: %q cannot render a partial table", ErrUnsupportedFormat, tb.format)
	}
	if from == nil || to == nil || from.seqnum > to.seqnum {
		return fmt.Errorf("colview: invalid line range")
	}

	tb.wr = &outWriter{w: tb.out}
	tb.termLinesUsed = 0
	tb.headerPrinted = true // range output carries no header

	buf, err := tb.initializePrinting()
	if err != nil {
		return err
	}
	defer tb.cleanupPrinting()

	lines := tb.lines[from.seqnum : to.seqnum+1]
	if err := tb.printRange(buf, lines); err != nil {
		return err
	}
	if len(lines) > 0 {
		tb.wr.WriteString(tb.linesep)
		tb.termLinesUsed++
	}
	return tb.wr.err
}
