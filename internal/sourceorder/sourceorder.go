// Package sourceorder recovers the declaration order of mapping keys from the
// raw text of a JSON or YAML document.
//
// Document models built on Go maps lose the order in which keys were written.
// An Index keeps the parsed node tree so callers can ask for the keys of any
// mapping, addressed by its key path, in source order.
package sourceorder

import (
	"fmt"
	"sort"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Index answers key-order queries against one parsed document.
// A nil *Index is valid and knows no order.
type Index struct {
	root *yaml.Node
}

// Parse builds an Index from raw JSON or YAML bytes.
func Parse(data []byte) (*Index, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("sourceorder: %w", err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return &Index{}, nil
		}
		root = root.Content[0]
	}
	return &Index{root: root}, nil
}

// Keys returns the keys of the mapping at path in declaration order, or nil
// when the path does not lead to a mapping. Path elements address mapping keys,
// or sequence positions when written as decimal indices.
func (ix *Index) Keys(path ...string) []string {
	node := ix.lookup(path)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

// Line returns the 1-based line of the value at path, or 0 if unknown.
func (ix *Index) Line(path ...string) int {
	node := ix.lookup(path)
	if node == nil {
		return 0
	}
	return node.Line
}

func (ix *Index) lookup(path []string) *yaml.Node {
	if ix == nil || ix.root == nil {
		return nil
	}
	node := ix.root
	for _, key := range path {
		node = child(node, key)
		if node == nil {
			return nil
		}
	}
	return node
}

func child(node *yaml.Node, key string) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.SequenceNode {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(node.Content) {
			return nil
		}
		return node.Content[i]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			v := node.Content[i+1]
			if v.Kind == yaml.AliasNode && v.Alias != nil {
				return v.Alias
			}
			return v
		}
	}
	return nil
}

// Order returns the keys of m ordered by their position in declared. Keys that
// do not appear in declared follow, sorted with less (lexically when less is nil).
func Order[V any](m map[string]V, declared []string, less func(a, b string) bool) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range declared {
		if _, ok := m[k]; ok && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}
	if len(out) == len(m) {
		return out
	}

	rest := make([]string, 0, len(m)-len(out))
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	if less == nil {
		sort.Strings(rest)
	} else {
		sort.Slice(rest, func(i, j int) bool { return less(rest[i], rest[j]) })
	}
	return append(out, rest...)
}
