package colview

// buffer accumulates one cell's worth of output: optional decoration (tree
// or group art) followed by the real data. The art index records where the
// decoration ends so the emitters can avoid coloring it.
type buffer struct {
	b      []byte
	artIdx int
}

func newBuffer(sz int) *buffer {
	return &buffer{b: make([]byte, 0, sz)}
}

func (bf *buffer) reset() {
	bf.b = bf.b[:0]
	bf.artIdx = 0
}

func (bf *buffer) appendString(s string) {
	bf.b = append(bf.b, s...)
}

func (bf *buffer) appendNTimes(n int, s string) {
	for i := 0; i < n; i++ {
		bf.appendString(s)
	}
}

// setArtIndex marks the current end of the buffer as the art boundary.
func (bf *buffer) setArtIndex() {
	bf.artIdx = len(bf.b)
}

func (bf *buffer) data() string { return string(bf.b) }

func (bf *buffer) size() int { return cap(bf.b) }

// safeParts returns the escaped view of buf split at the art boundary,
// together with the total display width of the escaped content. With
// encoding disabled the raw bytes are returned as-is.
func (tb *Table) safeParts(buf *buffer, safechars string) (art, data string, width int) {
	art = string(buf.b[:buf.artIdx])
	data = string(buf.b[buf.artIdx:])
	if tb.noEncode {
		return art, data, displayWidth(art) + displayWidth(data)
	}
	var aw, dw int
	art, aw = safeEncode(art, safechars)
	data, dw = safeEncode(data, safechars)
	return art, data, aw + dw
}
