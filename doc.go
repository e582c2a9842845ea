// Package colview renders an in-memory table model in multiple output
// formats: aligned human-readable text, delimiter-separated raw text,
// shell-quoted export pairs, structured JSON, and YAML.
//
// The model is built from a [Table] holding [Column]s and [Line]s; lines may
// carry parent/child links (rendered with tree connector art) and may be
// tied together by [Group]s (rendered with multi-column group connector
// art). All measurement is multibyte-aware: widths are terminal cells, not
// bytes.
//
// # Building a table
//
//	tb := colview.New(os.Stdout)
//	tb.AddColumn("NAME")
//	tb.AddColumn("SIZE").Right = true
//	tb.NewLine().SetCell(0, "disk0").SetCell(1, "100")
//	tb.Render()
//
// Add all columns before creating lines. Tree structure comes from
// [Table.NewChildLine]:
//
//	root := tb.NewLine()
//	tb.NewChildLine(root).SetCell(0, "child")
//
// # Formats
//
// [Human] aligns columns to the terminal width, padding, truncating or
// wrapping cells according to per-column policy. [Raw] emits bare values
// joined by the column separator, with blanks escaped. [Export] emits
// shell-evaluable NAME="value" pairs. [JSON] and [YAML] emit one object per
// line, nesting trees through a "children" array; values are typed via
// [Column.JSONType]. Use [ParseFormat] to convert a CLI flag string into a
// [Format].
//
// # Wrapping
//
// A column with Wrap set continues overlong content on synthetic extra
// output lines, truncated to the column width per step. Setting
// [Column.NextChunk] switches to custom wrapping with caller-defined chunk
// boundaries; [WrapNL] and [WrapWords] are ready-made chunkers.
//
// # Terminal handling
//
// For human output the table detects whether the writer is a TTY and sizes
// itself to the device; [Table.SetTermForce] and [Table.SetTermSize]
// override detection. Column widths are assigned once per render pass by a
// [Layouter]; the default [ContentLayout] measures content and shrinks
// flexible columns to fit.
//
// # Errors
//
// The first failing write or per-cell operation aborts the render pass;
// output already written stays written. Sentinel errors
// ([ErrUnsupportedFormat], [ErrInvalidWidth], [ErrConflictingFlags],
// [ErrRenderInProgress]) support programmatic handling.
//
// A Table must not be rendered concurrently: per-column wrap cursors are
// stateful across one whole pass.
package colview
