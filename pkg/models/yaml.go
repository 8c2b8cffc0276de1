package models

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the record with every string styled so that it decodes
// back to exactly the same value.
func (r Record) MarshalYAML() (interface{}, error) {
	directories := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, dir := range r.Structure.Directories {
		directories.Content = append(directories.Content, textNode(dir))
	}

	files := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, f := range r.Structure.Files {
		files.Content = append(files.Content, mappingNode(
			"path", textNode(f.Path),
			"content_history", f.ContentHistory.node(),
		))
	}

	return mappingNode(
		"structure", mappingNode(
			"directories", directories,
			"files", files,
		),
		"start_command", textNode(r.StartCommand),
	), nil
}

func mappingNode(pairs ...interface{}) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pairs[i].(string)}
		node.Content = append(node.Content, key, pairs[i+1].(*yaml.Node))
	}
	return node
}

// textNode returns a string scalar. Multi-line text keeps the readable literal
// block style unless the block would not read back verbatim, in which case it
// is double-quoted with escapes.
func textNode(s string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if !literalSafe(s) {
		node.Style = yaml.DoubleQuotedStyle
	}
	return node
}

// literalSafe reports whether s can be emitted in its default style and
// decoded unchanged. Single-line strings are quoted by the encoder as needed.
func literalSafe(s string) bool {
	if strings.ContainsAny(s, "\r\u0085\u2028\u2029") {
		return false
	}
	if !strings.Contains(s, "\n") {
		return true
	}
	if strings.TrimSpace(s) == "" || strings.HasSuffix(s, "\n\n") {
		return false
	}
	switch s[0] {
	case ' ', '\t', '\n':
		return false
	}
	for _, line := range strings.Split(s, "\n") {
		if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
			return false
		}
	}
	return true
}
