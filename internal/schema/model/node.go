package model

import "strings"

// Node is one schema.org graph node: a JSON object with a required @type
// (string or []string for multi-typed nodes) and an optional @id. A nil Node
// means "does not apply" and is skipped by the orchestrator.
type Node map[string]any

// Ref builds an {@id: ...} reference to another node.
func Ref(id string) Node {
	return Node{"@id": id}
}

// SetNonEmpty assigns key only when the trimmed value is non-empty.
func (n Node) SetNonEmpty(key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		n[key] = v
	}
}

// ID returns the node's @id, or "" when absent or not a string.
func (n Node) ID() string {
	id, _ := n["@id"].(string)
	return id
}

// Type returns the node's @type as a flat list. A single-string @type comes
// back as a one-element slice.
func (n Node) Type() []string {
	switch t := n["@type"].(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// HasType reports whether want appears among the node's types.
func (n Node) HasType(want string) bool {
	for _, t := range n.Type() {
		if t == want {
			return true
		}
	}
	return false
}
