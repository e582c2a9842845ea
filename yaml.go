package colview

import (
	"gopkg.in/yaml.v3"
)

// renderYAML encodes the table as one YAML document: a root mapping keyed by
// the table name holding a sequence of per-line mappings, with tree
// hierarchy expressed through nested "children" sequences. Decoration art
// never appears; values are typed by the column's JSONType.
func (tb *Table) renderYAML() error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	if tb.isTree() {
		for _, root := range tb.rootLines() {
			seq.Content = append(seq.Content, tb.yamlLine(root, true))
		}
	} else {
		for _, ln := range tb.lines {
			seq.Content = append(seq.Content, tb.yamlLine(ln, false))
		}
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			yamlScalar(tb.name, JSONString),
			seq,
		},
	}

	enc := yaml.NewEncoder(tb.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func (tb *Table) yamlLine(ln *Line, tree bool) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, cl := range tb.visibleColumns() {
		m.Content = append(m.Content, yamlScalar(cl.Header.Text, JSONString))
		m.Content = append(m.Content, tb.yamlValue(cl, ln.cellText(cl)))
	}
	if tree && ln.hasChildren() {
		children := &yaml.Node{Kind: yaml.SequenceNode}
		for _, ch := range ln.children {
			children.Content = append(children.Content, tb.yamlLine(ch, true))
		}
		m.Content = append(m.Content, yamlScalar("children", JSONString))
		m.Content = append(m.Content, children)
	}
	return m
}

func (tb *Table) yamlValue(cl *Column, data string) *yaml.Node {
	switch cl.JSONType {
	case JSONArrayString, JSONArrayNumber:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		elem := JSONString
		if cl.JSONType == JSONArrayNumber {
			elem = JSONNumber
		}
		if !cl.isCustomWrap() {
			seq.Content = append(seq.Content, yamlScalar(data, elem))
			return seq
		}
		for {
			chunk, rest := cl.NextChunk(data)
			seq.Content = append(seq.Content, yamlScalar(chunk, elem))
			if rest == "" {
				return seq
			}
			data = rest
		}
	case JSONBoolean:
		v := "true"
		if data == "" || data[0] == '0' || data[0] == 'N' || data[0] == 'n' {
			v = "false"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
	default:
		return yamlScalar(data, cl.JSONType)
	}
}

func yamlScalar(s string, t JSONType) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: s}
	if t == JSONNumber {
		if s == "" {
			n.Tag = "!!null"
		}
		return n
	}
	n.Tag = "!!str"
	return n
}
