package emitter

import (
	"bytes"
	"sync"
)

const (
	// typical rendered size of one client function plus its share of types
	bytesPerRoute = 1024
	// preamble, runtime helpers and security helpers
	baseOutputSize = 4 * 1024

	maxPooledBufferSize = 1 << 20
)

var outputBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func outputSizeHint(routeCount int) int {
	hint := baseOutputSize + routeCount*bytesPerRoute
	return min(hint, maxPooledBufferSize)
}

// getOutputBuffer returns an empty buffer with room for routeCount routes.
func getOutputBuffer(routeCount int) *bytes.Buffer {
	buf := outputBuffers.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Grow(outputSizeHint(routeCount))
	return buf
}

func putOutputBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBufferSize {
		return
	}
	outputBuffers.Put(buf)
}
