package extractor

import (
	"strconv"
	"strings"

	"github.com/erraggy/oastsgen/internal/sourceorder"
)

// location is the key path of a node in the source document.
type location []string

// child returns a new location extended by keys. The receiver is never aliased.
func (l location) child(keys ...string) location {
	out := make(location, 0, len(l)+len(keys))
	out = append(out, l...)
	return append(out, keys...)
}

func (l location) index(i int) location {
	return l.child(strconv.Itoa(i))
}

// ordered returns the keys of m in source order, falling back to less.
func ordered[V any](ix *sourceorder.Index, m map[string]V, at location, less func(a, b string) bool) []string {
	return sourceorder.Order(m, ix.Keys(at...), less)
}

// statusLess sorts "default" first, then codes numerically, then anything else lexically.
func statusLess(a, b string) bool {
	if a == "default" || b == "default" {
		return a == "default" && b != "default"
	}
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return strings.ToUpper(a) < strings.ToUpper(b)
	}
}
