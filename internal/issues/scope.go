package issues

import (
	"strings"
	"sync"
)

// Scope is a stack of named traversal steps rendered as a dotted path.
type Scope struct {
	segments []string
}

// Push appends a segment and returns the function that removes it again.
// Callers defer the returned func so the segment is popped on every exit path.
func (s *Scope) Push(segment string) (pop func()) {
	s.segments = append(s.segments, segment)
	depth := len(s.segments)
	return func() {
		s.segments = s.segments[:depth-1]
	}
}

// Depth returns the number of segments currently pushed.
func (s *Scope) Depth() int {
	return len(s.segments)
}

var builderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// String returns the dotted path of the current segments. Segments are not
// escaped: "get /pets/{id}" stays one segment even though it holds a slash.
func (s *Scope) String() string {
	switch len(s.segments) {
	case 0:
		return ""
	case 1:
		return s.segments[0]
	}

	sb := builderPool.Get().(*strings.Builder)
	sb.Reset()
	for i, seg := range s.segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(seg)
	}
	result := sb.String()
	builderPool.Put(sb)
	return result
}

func (s *Scope) clone() Scope {
	return Scope{segments: append([]string(nil), s.segments...)}
}
