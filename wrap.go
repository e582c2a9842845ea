package colview

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// WrapNL is a ChunkFunc splitting cell text at newlines: each line of the
// value becomes one wrap chunk.
func WrapNL(s string) (chunk, rest string) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// WrapWords returns a ChunkFunc that breaks cell text at word boundaries so
// each chunk fits into width cells. A single word wider than the budget is
// emitted on its own chunk rather than split. Leading blanks of the
// remainder are dropped.
func WrapWords(width int) ChunkFunc {
	return func(s string) (chunk, rest string) {
		if width <= 0 || displayWidth(s) <= width {
			return s, ""
		}
		used, end := 0, 0
		tokens := words.FromString(s)
		for tokens.Next() {
			tok := tokens.Value()
			w := displayWidth(tok)
			if end > 0 && used+w > width {
				break
			}
			used += w
			end += len(tok)
		}
		if end == 0 || end >= len(s) {
			return s, ""
		}
		chunk = strings.TrimRight(s[:end], " ")
		rest = strings.TrimLeft(s[end:], " ")
		if rest == "" {
			return s, ""
		}
		return chunk, rest
	}
}
