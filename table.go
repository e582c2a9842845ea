package colview

import (
	"fmt"
	"io"
)

// TermForce overrides TTY auto-detection.
type TermForce int

const (
	TermForceAuto TermForce = iota
	TermForceNever
	TermForceAlways
)

// Table is the in-memory model the rendering engine consumes: an ordered set
// of columns, a forest of lines, the chosen output format and the print-time
// bookkeeping of one render pass.
//
// A Table is not safe for concurrent use; per-column pending cursors are
// stateful across a whole pass, so Render rejects re-entrant calls.
type Table struct {
	out    io.Writer
	wr     *outWriter
	name   string
	cols   []*Column
	lines  []*Line
	groups []*Group
	title  Cell

	symbols     *Symbols
	privSymbols bool
	format      Format
	colsep      string
	linesep     string
	layout      Layouter

	noHeadings   bool
	maxOut       bool
	minOut       bool
	noEncode     bool
	noLineSep    bool
	colorsWanted bool
	headerRepeat bool
	paddingDebug bool

	termForce   TermForce
	termWidth   int
	termHeight  int
	termReduce  int
	termSizeSet bool
	isTerm      bool

	// print-time state, valid for one pass
	termLinesUsed int
	headerPrinted bool
	headerNext    int
	isDummyPrint  bool
	grpset        []*Group
	bufSize       int
	json          *jsonWriter
	printing      bool
}

// New creates an empty table writing to out.
func New(out io.Writer) *Table {
	return &Table{
		out:        out,
		name:       "table",
		format:     Human,
		colsep:     " ",
		linesep:    "\n",
		layout:     ContentLayout{},
		termWidth:  80,
		termHeight: 24,
	}
}

// SetName sets the table name used as the JSON and YAML root key.
func (tb *Table) SetName(name string) { tb.name = name }

// SetFormat selects the output format.
func (tb *Table) SetFormat(f Format) { tb.format = f }

// SetSymbols overrides the decoration glyph set. Passing nil restores the
// defaults on the next render.
func (tb *Table) SetSymbols(sy *Symbols) { tb.symbols = sy }

// SetColumnSeparator sets the string between columns (default one space).
func (tb *Table) SetColumnSeparator(s string) { tb.colsep = s }

// SetLineSeparator sets the string between output lines (default newline).
func (tb *Table) SetLineSeparator(s string) { tb.linesep = s }

// SetLayouter replaces the column width solver invoked once per human-format
// render pass.
func (tb *Table) SetLayouter(l Layouter) { tb.layout = l }

// SetNoHeadings suppresses the header line.
func (tb *Table) SetNoHeadings(on bool) { tb.noHeadings = on }

// SetNoLineSep suppresses the separator between lines.
func (tb *Table) SetNoLineSep(on bool) { tb.noLineSep = on }

// SetNoEncoding disables the \x<hex> escaping of non-printable bytes.
func (tb *Table) SetNoEncoding(on bool) { tb.noEncode = on }

// SetColors enables emission of the color sequences stored on cells, lines
// and columns.
func (tb *Table) SetColors(on bool) { tb.colorsWanted = on }

// SetHeaderRepeat re-emits the header every terminal-height lines. It is
// ignored for non-terminal output, non-human formats and trees.
func (tb *Table) SetHeaderRepeat(on bool) { tb.headerRepeat = on }

// SetPaddingDebug renders cell padding as '.' to make layout visible.
func (tb *Table) SetPaddingDebug(on bool) { tb.paddingDebug = on }

// SetMaxOut forces trailing padding on every column including the last.
// MaxOut and MinOut are mutually exclusive.
func (tb *Table) SetMaxOut(on bool) error {
	if on && tb.minOut {
		return fmt.Errorf("%w: maxout requested with minout enabled", ErrConflictingFlags)
	}
	tb.maxOut = on
	return nil
}

// SetMinOut skips trailing padding whenever the remaining columns of the
// line are empty. MaxOut and MinOut are mutually exclusive.
func (tb *Table) SetMinOut(on bool) error {
	if on && tb.maxOut {
		return fmt.Errorf("%w: minout requested with maxout enabled", ErrConflictingFlags)
	}
	tb.minOut = on
	return nil
}

// SetTermForce overrides TTY detection.
func (tb *Table) SetTermForce(f TermForce) { tb.termForce = f }

// SetTermSize fixes the terminal geometry instead of querying the device.
func (tb *Table) SetTermSize(width, height int) {
	tb.termWidth = width
	tb.termHeight = height
	tb.termSizeSet = true
}

// SetTermReduce shrinks the usable terminal width by n cells.
func (tb *Table) SetTermReduce(n int) { tb.termReduce = n }

// SetTitle sets the table title printed above the table in human format.
// The returned cell carries the title's color and alignment.
func (tb *Table) SetTitle(text string) *Cell {
	tb.title.Text = text
	return &tb.title
}

// AddColumn appends a column with the given header and returns it for
// further configuration. Add all columns before creating lines.
func (tb *Table) AddColumn(name string) *Column {
	cl := &Column{Header: Cell{Text: name}, seqnum: len(tb.cols)}
	tb.cols = append(tb.cols, cl)
	return cl
}

// Columns returns the table's columns in order.
func (tb *Table) Columns() []*Column { return tb.cols }

// NewLine appends a root line.
func (tb *Table) NewLine() *Line {
	ln := &Line{cells: make([]Cell, len(tb.cols)), seqnum: len(tb.lines)}
	tb.lines = append(tb.lines, ln)
	return ln
}

// NewChildLine appends a line nested under parent.
func (tb *Table) NewChildLine(parent *Line) *Line {
	ln := tb.NewLine()
	ln.parent = parent
	parent.children = append(parent.children, ln)
	return ln
}

// Lines returns all lines in insertion order.
func (tb *Table) Lines() []*Line { return tb.lines }

func (tb *Table) isTree() bool {
	for _, ln := range tb.lines {
		if ln.parent != nil {
			return true
		}
	}
	return false
}

func (tb *Table) hasGroups() bool { return len(tb.groups) > 0 }

func (tb *Table) rootLines() []*Line {
	var roots []*Line
	for _, ln := range tb.lines {
		if ln.parent == nil {
			roots = append(roots, ln)
		}
	}
	return roots
}

func (tb *Table) isLastTreeRoot(ln *Line) bool {
	roots := tb.rootLines()
	return len(roots) > 0 && roots[len(roots)-1] == ln
}

// visibleColumns yields the non-hidden columns in order.
func (tb *Table) visibleColumns() []*Column {
	var out []*Column
	for _, cl := range tb.cols {
		if !cl.Hidden {
			out = append(out, cl)
		}
	}
	return out
}

func (tb *Table) isLastColumn(cl *Column) bool {
	for i := len(tb.cols) - 1; i >= 0; i-- {
		if !tb.cols[i].Hidden {
			return tb.cols[i] == cl
		}
	}
	return false
}

// cellColor resolves the effective color: cell, then line, then column.
func (tb *Table) cellColor(cl *Column, ln *Line, ce *Cell) string {
	if !tb.colorsWanted {
		return ""
	}
	if ce != nil && ce.Color != "" {
		return ce.Color
	}
	if ln != nil && ln.Color != "" {
		return ln.Color
	}
	if cl != nil {
		return cl.Color
	}
	return ""
}

// outWriter wraps the destination with a sticky error, so the forward-only
// emitters can write freely and surface the first failure at checkpoints.
type outWriter struct {
	w   io.Writer
	err error
}

func (o *outWriter) WriteString(s string) {
	if o.err != nil || s == "" {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}
