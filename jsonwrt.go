package colview

import "encoding/json"

// jsonWriter emits syntactically valid JSON incrementally. Commas are driven
// by the caller's "last value" knowledge, which is what the forward-only
// tree walker has; the writer never buffers or reorders.
type jsonWriter struct {
	out   *outWriter
	level int
}

func newJSONWriter(out *outWriter) *jsonWriter {
	return &jsonWriter{out: out}
}

const jsonIndent = "   "

func (j *jsonWriter) indent() {
	for i := 0; i < j.level; i++ {
		j.out.WriteString(jsonIndent)
	}
}

func (j *jsonWriter) rootOpen() {
	j.out.WriteString("{\n")
	j.level++
}

func (j *jsonWriter) rootClose() {
	j.level--
	j.out.WriteString("}\n")
}

func (j *jsonWriter) objectOpen(name string) {
	j.indent()
	if name != "" {
		j.out.WriteString(jsonQuote(name))
		j.out.WriteString(": ")
	}
	j.out.WriteString("{\n")
	j.level++
}

func (j *jsonWriter) objectClose(last bool) {
	j.level--
	j.indent()
	j.out.WriteString("}")
	if !last {
		j.out.WriteString(",")
	}
	j.out.WriteString("\n")
}

func (j *jsonWriter) arrayOpen(name string) {
	j.indent()
	if name != "" {
		j.out.WriteString(jsonQuote(name))
		j.out.WriteString(": ")
	}
	j.out.WriteString("[\n")
	j.level++
}

func (j *jsonWriter) arrayClose(last bool) {
	j.level--
	j.indent()
	j.out.WriteString("]")
	if !last {
		j.out.WriteString(",")
	}
	j.out.WriteString("\n")
}

func (j *jsonWriter) valueS(name, val string, last bool) {
	j.value(name, jsonQuote(val), last)
}

// valueRaw emits val verbatim, for numbers. Empty values become null so the
// document stays valid.
func (j *jsonWriter) valueRaw(name, val string, last bool) {
	if val == "" {
		val = "null"
	}
	j.value(name, val, last)
}

func (j *jsonWriter) valueBool(name string, v bool, last bool) {
	s := "false"
	if v {
		s = "true"
	}
	j.value(name, s, last)
}

func (j *jsonWriter) value(name, val string, last bool) {
	j.indent()
	if name != "" {
		j.out.WriteString(jsonQuote(name))
		j.out.WriteString(": ")
	}
	j.out.WriteString(val)
	if !last {
		j.out.WriteString(",")
	}
	j.out.WriteString("\n")
}

// jsonQuote returns s as a JSON string literal.
func jsonQuote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
