package colview

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// ParseColor converts a space-separated color spec such as "red" or
// "bold yellow" into the ANSI escape sequence the model stores in color
// fields. Unknown names are an error.
func ParseColor(spec string) (string, error) {
	var b strings.Builder
	for _, name := range strings.Fields(strings.ToLower(spec)) {
		if seq, ok := colorAttrs[name]; ok {
			b.WriteString(termenv.CSI + seq + "m")
			continue
		}
		if c, ok := colorNames[name]; ok {
			b.WriteString(termenv.CSI + c.Sequence(false) + "m")
			continue
		}
		return "", fmt.Errorf("unknown color name %q", name)
	}
	return b.String(), nil
}

var colorNames = map[string]termenv.ANSIColor{
	"black":   termenv.ANSIBlack,
	"red":     termenv.ANSIRed,
	"green":   termenv.ANSIGreen,
	"yellow":  termenv.ANSIYellow,
	"blue":    termenv.ANSIBlue,
	"magenta": termenv.ANSIMagenta,
	"cyan":    termenv.ANSICyan,
	"white":   termenv.ANSIWhite,
}

var colorAttrs = map[string]string{
	"bold":      termenv.BoldSeq,
	"faint":     termenv.FaintSeq,
	"italic":    termenv.ItalicSeq,
	"underline": termenv.UnderlineSeq,
	"blink":     termenv.BlinkSeq,
	"reverse":   termenv.ReverseSeq,
}
