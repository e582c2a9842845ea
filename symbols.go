package colview

// Symbols holds the glyphs used for tree and group decoration and for
// padding. Empty fields fall back to the ASCII defaults, so a partially
// filled Symbols is valid.
type Symbols struct {
	Branch string // connects a child to its parent
	Vert   string // vertical continuation between siblings
	Right  string // connects the last child to its parent

	TitlePadding string
	CellPadding  string

	GroupVert         string
	GroupHorz         string
	GroupFirstMember  string
	GroupMiddleMember string
	GroupLastMember   string
	GroupMiddleChild  string
	GroupLastChild    string
}

// DefaultSymbols returns the plain ASCII symbol set.
func DefaultSymbols() *Symbols {
	return &Symbols{
		Branch:            "|-",
		Vert:              "| ",
		Right:             "`-",
		TitlePadding:      " ",
		CellPadding:       " ",
		GroupVert:         "|",
		GroupHorz:         "-",
		GroupFirstMember:  ",->",
		GroupMiddleMember: "|->",
		GroupLastMember:   "\\->",
		GroupMiddleChild:  "|-",
		GroupLastChild:    "`-",
	}
}

// UnicodeSymbols returns a box-drawing symbol set for UTF-8 terminals.
func UnicodeSymbols() *Symbols {
	return &Symbols{
		Branch:            "├─",
		Vert:              "│ ",
		Right:             "└─",
		TitlePadding:      " ",
		CellPadding:       " ",
		GroupVert:         "│",
		GroupHorz:         "─",
		GroupFirstMember:  "┌─▶",
		GroupMiddleMember: "├─▶",
		GroupLastMember:   "└─▶",
		GroupMiddleChild:  "├─",
		GroupLastChild:    "└─",
	}
}

// Fallback accessors. The table may carry a partially filled Symbols, so
// every glyph lookup goes through one of these.

func (tb *Table) branchSymbol() string { return orDefault(tb.symbols.Branch, "|-") }
func (tb *Table) vertSymbol() string { return orDefault(tb.symbols.Vert, "| ") }
func (tb *Table) rightSymbol() string { return orDefault(tb.symbols.Right, "`-") }

func (tb *Table) titlePadding() string { return orDefault(tb.symbols.TitlePadding, " ") }

func (tb *Table) cellPadding() string {
	if tb.paddingDebug {
		return "."
	}
	return orDefault(tb.symbols.CellPadding, " ")
}

func (tb *Table) grpVertSymbol() string { return orDefault(tb.symbols.GroupVert, "|") }
func (tb *Table) grpHorzSymbol() string { return orDefault(tb.symbols.GroupHorz, "-") }
func (tb *Table) grpFirstSymbol() string { return orDefault(tb.symbols.GroupFirstMember, ",->") }
func (tb *Table) grpMiddleSymbol() string { return orDefault(tb.symbols.GroupMiddleMember, "|->") }
func (tb *Table) grpLastSymbol() string { return orDefault(tb.symbols.GroupLastMember, "\\->") }
func (tb *Table) grpMChildSymbol() string { return orDefault(tb.symbols.GroupMiddleChild, "|-") }
func (tb *Table) grpLChildSymbol() string { return orDefault(tb.symbols.GroupLastChild, "`-") }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
