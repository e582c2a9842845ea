package colview_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/colview"
)

func TestRenderTree(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	name := tb.AddColumn("NAME")
	name.Tree = true
	tb.AddColumn("SIZE")

	root := tb.NewLine().SetCell(0, "root").SetCell(1, "10")
	tb.NewChildLine(root).SetCell(0, "a").SetCell(1, "1")
	b := tb.NewChildLine(root).SetCell(0, "b").SetCell(1, "2")
	tb.NewChildLine(b).SetCell(0, "c").SetCell(1, "3")

	require.NoError(t, tb.Render())
	want := strings.Join([]string{
		"NAME  SIZE",
		"root  10",
		"|-a   1",
		"`-b   2",
		"  `-c 3",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRenderTreeArtDepth(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	tb.SetNoHeadings(true)
	name := tb.AddColumn("NAME")
	name.Tree = true

	ln := tb.NewLine().SetCell(0, "d0")
	for depth := 1; depth <= 4; depth++ {
		ln = tb.NewChildLine(ln).SetCell(0, "x")
	}

	require.NoError(t, tb.Render())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for depth, line := range lines[1:] {
		// one two-cell art unit per ancestor level
		prefix := strings.Repeat("  ", depth) + "`-"
		assert.Equal(t, prefix+"x", line)
	}
}

func TestRenderTreeUnicodeSymbols(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	tb.SetNoHeadings(true)
	tb.SetSymbols(colview.UnicodeSymbols())
	name := tb.AddColumn("NAME")
	name.Tree = true

	root := tb.NewLine().SetCell(0, "root")
	tb.NewChildLine(root).SetCell(0, "a")
	tb.NewChildLine(root).SetCell(0, "b")

	require.NoError(t, tb.Render())
	assert.Equal(t, "root\n├─a\n└─b\n", out.String())
}

func TestRenderGroups(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	name := tb.AddColumn("NAME")
	name.Tree = true
	name.Groups = true

	a := tb.NewLine().SetCell(0, "a")
	tb.NewChildLine(a).SetCell(0, "b")
	c := tb.NewLine().SetCell(0, "c")

	g := tb.NewGroup()
	g.AddMember(a)
	g.AddChild(c)

	require.NoError(t, tb.Render())
	want := strings.Join([]string{
		"    NAME",
		`\-> a`,
		" |  `-b",
		" `--c",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

type fixedLayout struct{ widths []int }

func (l fixedLayout) Calculate(tb *colview.Table) error {
	for i, cl := range tb.Columns() {
		cl.SetWidth(l.widths[i])
	}
	return nil
}

func TestSetLayouter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	tb.SetLayouter(fixedLayout{widths: []int{8, 4}})
	tb.AddColumn("NAME")
	tb.AddColumn("SIZE")
	tb.NewLine().SetCell(0, "disk0").SetCell(1, "100")

	require.NoError(t, tb.Render())
	assert.Equal(t, "NAME     SIZE\ndisk0    100\n", out.String())
}

func TestRenderOverflowBreaksLine(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	tb.SetNoHeadings(true)
	tb.SetLayouter(fixedLayout{widths: []int{3, 3}})
	tb.AddColumn("A")
	tb.AddColumn("B")
	tb.NewLine().SetCell(0, "LONGDATA").SetCell(1, "b")

	require.NoError(t, tb.Render())

	// a non-truncatable overflow pushes the following columns onto a
	// fresh line, padded past the overflowed column
	assert.Equal(t, "LONGDATA\n    b\n", out.String())
}

func TestRenderTruncZeroWidth(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	tb.SetNoHeadings(true)
	tb.SetLayouter(fixedLayout{widths: []int{0, 3}})
	a := tb.AddColumn("A")
	a.Trunc = true
	tb.AddColumn("B")
	tb.NewLine().SetCell(0, "disk").SetCell(1, "b")

	require.NoError(t, tb.Render())
	assert.Equal(t, " b\n", out.String())
}

func TestRenderWrap(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceAlways)
	tb.SetTermSize(10, 24)
	tb.AddColumn("NAME")
	data := tb.AddColumn("DATA")
	data.Wrap = true

	content := strings.Repeat("a", 15)
	tb.NewLine().SetCell(0, "ab").SetCell(1, content)

	require.NoError(t, tb.Render())
	want := strings.Join([]string{
		"NAME DATA",
		"ab   aaaaa",
		"     aaaaa",
		"     aaaaa",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())

	// the chunks reassemble the original value
	var got strings.Builder
	for _, line := range strings.Split(out.String(), "\n")[1:] {
		if len(line) > 5 {
			got.WriteString(line[5:])
		}
	}
	assert.Equal(t, content, got.String())
}

func TestRenderTruncWinsOverWrap(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceAlways)
	tb.SetTermSize(5, 24)
	data := tb.AddColumn("DATA")
	data.Trunc = true
	data.Wrap = true
	tb.NewLine().SetCell(0, strings.Repeat("a", 15))

	require.NoError(t, tb.Render())
	assert.Equal(t, "DATA\naaaaa\n", out.String())
}

func TestRenderCustomWrap(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	data := tb.AddColumn("DATA")
	data.NextChunk = colview.WrapNL
	data.SafeChars = "\n"
	tb.NewLine().SetCell(0, "a\nbb\ncc")

	require.NoError(t, tb.Render())
	assert.Equal(t, "DATA\na\nbb\ncc\n", out.String())
}

func TestRenderMinOutWithCustomWrapAndRightAlign(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	require.NoError(t, tb.SetMinOut(true))
	a := tb.AddColumn("A")
	a.NextChunk = colview.WrapNL
	a.SafeChars = "\n"
	b := tb.AddColumn("B")
	b.Right = true
	tb.AddColumn("C")
	tb.NewLine().SetCell(0, "xx\nyy").SetCell(1, "5").SetCell(2, "")

	require.NoError(t, tb.Render())

	// the skip-fill check consults the line's cells, so the synthetic
	// second row still pads up to the right-aligned column
	want := strings.Join([]string{
		"A    B C",
		"xx   5",
		"yy   ",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRenderHeaderRepeat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceAlways)
	tb.SetTermSize(80, 2)
	tb.SetHeaderRepeat(true)
	tb.AddColumn("N")
	for _, v := range []string{"a", "b", "c", "d"} {
		tb.NewLine().SetCell(0, v)
	}

	require.NoError(t, tb.Render())
	assert.Equal(t, "N\na\nb\nN\nc\nd\n", out.String())
}

func TestRenderJSONFlat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetFormat(colview.JSON)
	tb.AddColumn("NAME")
	size := tb.AddColumn("SIZE")
	size.JSONType = colview.JSONNumber
	tb.NewLine().SetCell(0, "disk0").SetCell(1, "100")

	require.NoError(t, tb.Render())
	want := strings.Join([]string{
		"{",
		`   "table": [`,
		"      {",
		`         "NAME": "disk0",`,
		`         "SIZE": 100`,
		"      }",
		"   ]",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
	assert.True(t, json.Valid(out.Bytes()))
}

func TestRenderJSONTree(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetFormat(colview.JSON)
	name := tb.AddColumn("NAME")
	name.Tree = true
	tb.AddColumn("SIZE")

	a := tb.NewLine().SetCell(0, "a").SetCell(1, "1")
	tb.NewChildLine(a).SetCell(0, "b").SetCell(1, "2")
	tb.NewLine().SetCell(0, "c").SetCell(1, "3")

	require.NoError(t, tb.Render())
	require.True(t, json.Valid(out.Bytes()), "output: %s", out.String())

	var doc struct {
		Table []struct {
			Name     string `json:"NAME"`
			Children []struct {
				Name string `json:"NAME"`
			} `json:"children"`
		} `json:"table"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Table, 2)
	assert.Equal(t, "a", doc.Table[0].Name)
	require.Len(t, doc.Table[0].Children, 1)
	assert.Equal(t, "b", doc.Table[0].Children[0].Name)
	assert.Equal(t, "c", doc.Table[1].Name)
	assert.Empty(t, doc.Table[1].Children)

	// no decoration art leaks into structured output
	assert.NotContains(t, out.String(), "|-")
	assert.NotContains(t, out.String(), "`-")
}

func TestRenderJSONSpecialChars(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetFormat(colview.JSON)
	tb.SetName("devices")
	tb.AddColumn("LABEL")
	tb.NewLine().SetCell(0, "a\"b\\c\nd")

	require.NoError(t, tb.Render())
	require.True(t, json.Valid(out.Bytes()), "output: %s", out.String())

	var doc map[string][]map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc["devices"], 1)
	assert.Equal(t, "a\"b\\c\nd", doc["devices"][0]["LABEL"])
}

func TestRenderJSONBoolean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"No", false},
		{"no", false},
		{"1", true},
		{"yes", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			tb := colview.New(&out)
			tb.SetFormat(colview.JSON)
			ro := tb.AddColumn("RO")
			ro.JSONType = colview.JSONBoolean
			tb.NewLine().SetCell(0, tt.value)

			require.NoError(t, tb.Render())

			var doc map[string][]map[string]bool
			require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
			require.Len(t, doc["table"], 1)
			assert.Equal(t, tt.want, doc["table"][0]["RO"])
		})
	}
}

func TestRenderJSONArray(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetFormat(colview.JSON)
	flags := tb.AddColumn("FLAGS")
	flags.JSONType = colview.JSONArrayString
	flags.NextChunk = colview.WrapNL
	tb.NewLine().SetCell(0, "rw\nnosuid\nnodev")

	require.NoError(t, tb.Render())
	require.True(t, json.Valid(out.Bytes()), "output: %s", out.String())

	var doc map[string][]map[string][]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc["table"], 1)
	assert.Equal(t, []string{"rw", "nosuid", "nodev"}, doc["table"][0]["FLAGS"])
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetFormat(colview.YAML)
	tb.AddColumn("NAME")
	size := tb.AddColumn("SIZE")
	size.JSONType = colview.JSONNumber
	tb.NewLine().SetCell(0, "disk0").SetCell(1, "100")

	require.NoError(t, tb.Render())

	var doc map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc["table"], 1)
	assert.Equal(t, "disk0", doc["table"][0]["NAME"])
	assert.Equal(t, 100, doc["table"][0]["SIZE"])
}

func TestRenderYAMLTree(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetFormat(colview.YAML)
	name := tb.AddColumn("NAME")
	name.Tree = true

	root := tb.NewLine().SetCell(0, "root")
	tb.NewChildLine(root).SetCell(0, "leaf")

	require.NoError(t, tb.Render())

	var doc struct {
		Table []struct {
			Name     string `yaml:"NAME"`
			Children []struct {
				Name string `yaml:"NAME"`
			} `yaml:"children"`
		} `yaml:"table"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Table, 1)
	assert.Equal(t, "root", doc.Table[0].Name)
	require.Len(t, doc.Table[0].Children, 1)
	assert.Equal(t, "leaf", doc.Table[0].Children[0].Name)
}

func TestRenderRange(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetTermForce(colview.TermForceNever)
	tb.AddColumn("N")
	var lines []*colview.Line
	for _, v := range []string{"a", "b", "c", "d"} {
		lines = append(lines, tb.NewLine().SetCell(0, v))
	}

	require.NoError(t, tb.RenderRange(lines[1], lines[2]))
	assert.Equal(t, "b\nc\n", out.String())
}

func TestRenderRangeRejectsStructured(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.SetFormat(colview.JSON)
	tb.AddColumn("N")
	a := tb.NewLine().SetCell(0, "a")

	err := tb.RenderRange(a, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, colview.ErrUnsupportedFormat)
}

func TestRenderRangeInvalid(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := colview.New(&out)
	tb.AddColumn("N")
	a := tb.NewLine().SetCell(0, "a")

	assert.Error(t, tb.RenderRange(nil, a))
	assert.Error(t, tb.RenderRange(a, nil))
}

func TestRenderHiddenColumn(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	tb := newDiskTable(&out)
	tb.Columns()[1].Hidden = true

	require.NoError(t, tb.Render())
	assert.Equal(t, "NAME\ndisk0\nloop1\n", out.String())
}
