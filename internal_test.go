package colview

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", truncDisplay("abcd", 2))
	assert.Equal(t, "abcd", truncDisplay("abcd", 10))

	// a double-width rune never fits into one cell, but the cursor still
	// has to advance or the wrap loop would spin
	assert.Equal(t, "世", truncDisplay("世界", 1))

	// width zero truncates to nothing
	assert.Equal(t, "", truncDisplay("disk", 0))
}

func TestSafeEncode(t *testing.T) {
	t.Parallel()

	got, width := safeEncode("a\tb", "")
	assert.Equal(t, `a\x09b`, got)
	assert.Equal(t, 6, width)

	got, width = safeEncode("a\tb", "\t")
	assert.Equal(t, "a\tb", got)
	assert.Equal(t, 2, width)

	got, width = safeEncode("plain", "")
	assert.Equal(t, "plain", got)
	assert.Equal(t, 5, width)
}

func TestEncodeNonblank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `hello\x20world`, encodeNonblank("hello world"))
	assert.Equal(t, `a\x09b`, encodeNonblank("a\tb"))
	assert.Equal(t, "plain", encodeNonblank("plain"))
}

func TestShellIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"NAME", "NAME"},
		{"USE%", "USEPCT"},
		{"FS TYPE", "FS_TYPE"},
		{"MAJ:MIN", "MAJ_MIN"},
		{"1DEV", "_1DEV"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shellIdent(tt.in), "input %q", tt.in)
	}
}

func TestShellQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"plain"`, shellQuote("plain"))
	assert.Equal(t, `"a\"b"`, shellQuote(`a"b`))
	assert.Equal(t, `"\$HOME"`, shellQuote("$HOME"))
	assert.Equal(t, `"a\`+"`"+`b"`, shellQuote("a`b"))
	assert.Equal(t, `"a\x0ab"`, shellQuote("a\nb"))
}

func TestPendingDataZeroWidth(t *testing.T) {
	t.Parallel()

	tb := New(io.Discard)
	tb.wr = &outWriter{w: io.Discard}
	cl := &Column{}
	cl.setPending("leftover")

	assert.ErrorIs(t, tb.printPendingData(cl, nil, nil), ErrInvalidWidth)
}

func TestStepPending(t *testing.T) {
	t.Parallel()

	cl := &Column{}
	cl.setPending("abcdef")
	cl.stepPending(2)
	assert.Equal(t, "cdef", cl.pending)
	cl.stepPending(10)
	assert.False(t, cl.hasPending())
}

func TestGroupStateFor(t *testing.T) {
	t.Parallel()

	a := &Line{walkIdx: 0}
	b := &Line{walkIdx: 1}
	cont := &Line{walkIdx: 2}
	c := &Line{walkIdx: 3}
	d := &Line{walkIdx: 4}
	e := &Line{walkIdx: 5}
	after := &Line{walkIdx: 6}

	g := &Group{members: []*Line{a, b, c}, children: []*Line{d, e}}

	assert.Equal(t, stateFirstMember, g.stateFor(a))
	assert.Equal(t, stateMiddleMember, g.stateFor(b))
	assert.Equal(t, stateLastMember, g.stateFor(c))
	assert.Equal(t, stateContMembers, g.stateFor(cont))
	assert.Equal(t, stateMiddleChild, g.stateFor(d))
	assert.Equal(t, stateLastChild, g.stateFor(e))
	assert.Equal(t, stateContChildren, g.stateFor(after))
}

func TestGroupStateForSingleMember(t *testing.T) {
	t.Parallel()

	a := &Line{walkIdx: 0}
	g := &Group{members: []*Line{a}}
	assert.Equal(t, stateLastMember, g.stateFor(a))
}

func TestComputeGrpsetSize(t *testing.T) {
	t.Parallel()

	tb := New(io.Discard)
	tb.AddColumn("N")
	var lines []*Line
	for i := 0; i < 4; i++ {
		lines = append(lines, tb.NewLine())
	}
	tb.assignWalkOrder()

	g1 := tb.NewGroup()
	g1.AddMember(lines[0])
	g1.AddChild(lines[2])
	require.Equal(t, grpsetChunk, tb.computeGrpsetSize())

	// g2 overlaps g1, so two slots are live at once
	g2 := tb.NewGroup()
	g2.AddMember(lines[1])
	g2.AddChild(lines[3])
	assert.Equal(t, 2*grpsetChunk, tb.computeGrpsetSize())
}

func TestGrpsetIsEmpty(t *testing.T) {
	t.Parallel()

	tb := New(io.Discard)
	tb.grpset = make([]*Group, 2*grpsetChunk)

	empty, rest := tb.grpsetIsEmpty(grpsetChunk)
	assert.True(t, empty)
	assert.Equal(t, grpsetChunk, rest)

	tb.grpset[grpsetChunk] = &Group{}
	empty, _ = tb.grpsetIsEmpty(grpsetChunk)
	assert.False(t, empty)
}

func TestIsNextColumnsEmpty(t *testing.T) {
	t.Parallel()

	tb := New(io.Discard)
	a := tb.AddColumn("A")
	b := tb.AddColumn("B")
	ln := tb.NewLine().SetCell(0, "x").SetCell(1, "")

	assert.True(t, tb.isNextColumnsEmpty(a, ln))
	assert.True(t, tb.isNextColumnsEmpty(b, ln))

	ln.SetCell(1, "y")
	assert.False(t, tb.isNextColumnsEmpty(a, ln))

	// headers have no line to inspect
	assert.False(t, tb.isNextColumnsEmpty(a, nil))
}

func TestAlignPad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", alignPad("ab", 2, 5, AlignLeft, " "))
	assert.Equal(t, "   ab", alignPad("ab", 2, 5, AlignRight, " "))
	assert.Equal(t, " ab  ", alignPad("ab", 2, 5, AlignCenter, " "))
	assert.Equal(t, "abcde", alignPad("abcde", 5, 5, AlignRight, " "))
}

func TestCellPaddingDebug(t *testing.T) {
	t.Parallel()

	tb := New(io.Discard)
	tb.symbols = DefaultSymbols()
	assert.Equal(t, " ", tb.cellPadding())
	tb.paddingDebug = true
	assert.Equal(t, ".", tb.cellPadding())
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	j := newJSONWriter(&outWriter{w: &buf})

	j.rootOpen()
	j.arrayOpen("rows")
	j.objectOpen("")
	j.valueS("name", "sda", false)
	j.valueRaw("size", "", false)
	j.valueBool("ro", true, true)
	j.objectClose(true)
	j.arrayClose(true)
	j.rootClose()

	require.True(t, json.Valid(buf.Bytes()), "output: %s", buf.String())

	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc["rows"], 1)
	assert.Equal(t, "sda", doc["rows"][0]["name"])
	assert.Nil(t, doc["rows"][0]["size"])
	assert.Equal(t, true, doc["rows"][0]["ro"])
}

func TestWantRepeatHeader(t *testing.T) {
	t.Parallel()

	tb := New(io.Discard)
	assert.True(t, tb.wantRepeatHeader())

	tb.headerRepeat = true
	tb.headerNext = 10
	tb.termLinesUsed = 5
	assert.False(t, tb.wantRepeatHeader())

	tb.termLinesUsed = 10
	assert.True(t, tb.wantRepeatHeader())
}
