package colview

// Cell is one value in a line. Color and Align are optional overrides; the
// zero Cell renders as an empty field.
type Cell struct {
	Text  string
	Color string
	Align Alignment
}

// Line is one row of the table. In tree mode a line may have a parent and
// children; the parent link is a pure back-reference used for connector art
// and last-sibling queries.
type Line struct {
	Color string

	cells    []Cell
	parent   *Line
	children []*Line
	seqnum   int
	walkIdx  int
}

// SetCell sets the text of the cell in column ordinal i, growing the cell
// slice as needed.
func (ln *Line) SetCell(i int, text string) *Line {
	ln.grow(i)
	ln.cells[i].Text = text
	return ln
}

// Cell returns the cell in column ordinal i for in-place mutation. The
// returned pointer is valid until the cell slice next grows, so add columns
// before populating lines.
func (ln *Line) Cell(i int) *Cell {
	ln.grow(i)
	return &ln.cells[i]
}

func (ln *Line) grow(i int) {
	for len(ln.cells) <= i {
		ln.cells = append(ln.cells, Cell{})
	}
}

// Parent returns the line's parent, or nil for a root line.
func (ln *Line) Parent() *Line { return ln.parent }

// Children returns the line's children in insertion order.
func (ln *Line) Children() []*Line { return ln.children }

func (ln *Line) hasChildren() bool { return len(ln.children) > 0 }

func (ln *Line) isChild() bool { return ln.parent != nil }

func (ln *Line) isLastChild() bool {
	p := ln.parent
	return p != nil && p.children[len(p.children)-1] == ln
}

// cellText returns the text of the cell in column cl, or "" when the line
// has no cell there.
func (ln *Line) cellText(cl *Column) string {
	if cl.seqnum < len(ln.cells) {
		return ln.cells[cl.seqnum].Text
	}
	return ""
}

func (ln *Line) cellAt(cl *Column) *Cell {
	if cl.seqnum < len(ln.cells) {
		return &ln.cells[cl.seqnum]
	}
	return nil
}
