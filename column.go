package colview

// JSONType selects how a column's values are typed in JSON and YAML output.
type JSONType int

const (
	JSONString JSONType = iota
	JSONNumber
	JSONBoolean
	JSONArrayString
	JSONArrayNumber
)

// ChunkFunc splits cell text into caller-defined chunks for custom-wrap
// columns. It returns the chunk to emit and the remaining text; rest must be
// a suffix of s (possibly with leading separators removed) and an empty rest
// marks the final chunk.
type ChunkFunc func(s string) (chunk, rest string)

// Column describes one table column: its header, rendering policy and,
// while a print pass runs, the unconsumed remainder of a wrapped cell.
type Column struct {
	Header    Cell
	Color     string
	SafeChars string
	WidthHint int
	JSONType  JSONType
	NextChunk ChunkFunc

	Hidden bool // excluded from output entirely
	Trunc  bool // cut content to the column width
	Right  bool // right-align content
	Wrap   bool // continue overlong content on extra lines
	Tree   bool // carries the tree connector art
	Groups bool // carries the group connector art

	seqnum  int
	width   int
	pending string
}

// Width returns the render width assigned by the layout pass.
func (cl *Column) Width() int { return cl.width }

// SetWidth assigns the column's render width. The table's Layouter calls
// this once per render pass; widths set outside Calculate are overwritten
// by it.
func (cl *Column) SetWidth(w int) { cl.width = w }

func (cl *Column) isCustomWrap() bool { return cl.NextChunk != nil }

func (cl *Column) hasPending() bool { return cl.pending != "" }

func (cl *Column) setPending(s string) { cl.pending = s }

// stepPending advances the pending cursor after n bytes were emitted,
// clearing it once the remainder is exhausted.
func (cl *Column) stepPending(n int) {
	if n >= len(cl.pending) {
		cl.pending = ""
		return
	}
	cl.pending = cl.pending[n:]
}
