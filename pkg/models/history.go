package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// History is the append-only sequence of content versions for one file path,
// oldest first. The zero value is empty; a History stored in a Record is never
// empty.
type History struct {
	versions []string
}

// NewHistory starts a history with its originally authored content.
func NewHistory(content string) History {
	return History{versions: []string{content}}
}

// HistoryOf builds a history from versions, oldest first. The slice is copied.
func HistoryOf(versions ...string) History {
	return History{versions: append([]string(nil), versions...)}
}

// Append returns a history with content added as the newest version.
// The receiver is left untouched.
func (h History) Append(content string) History {
	next := make([]string, len(h.versions), len(h.versions)+1)
	copy(next, h.versions)
	return History{versions: append(next, content)}
}

// Current returns the newest version, the one used for instantiation.
func (h History) Current() string {
	if len(h.versions) == 0 {
		return ""
	}
	return h.versions[len(h.versions)-1]
}

// Versions returns a copy of every version, oldest first.
func (h History) Versions() []string {
	return append([]string(nil), h.versions...)
}

// Len returns the number of recorded versions.
func (h History) Len() int {
	return len(h.versions)
}

// Empty reports whether no version has been recorded.
func (h History) Empty() bool {
	return len(h.versions) == 0
}

// Equal reports whether both histories hold the same versions in the same order.
func (h History) Equal(other History) bool {
	if len(h.versions) != len(other.versions) {
		return false
	}
	for i := range h.versions {
		if h.versions[i] != other.versions[i] {
			return false
		}
	}
	return true
}

// MarshalYAML encodes the history as a sequence of strings.
func (h History) MarshalYAML() (interface{}, error) {
	return h.node(), nil
}

func (h History) node() *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, version := range h.versions {
		node.Content = append(node.Content, textNode(version))
	}
	return node
}

// UnmarshalYAML decodes a sequence of strings.
func (h *History) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: content_history must be a sequence of strings", value.Line)
	}

	var versions []string
	if err := value.Decode(&versions); err != nil {
		return err
	}

	h.versions = versions
	return nil
}
