package emitter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputSizeHint(t *testing.T) {
	assert.Equal(t, baseOutputSize, outputSizeHint(0))
	assert.Equal(t, baseOutputSize+3*bytesPerRoute, outputSizeHint(3))
	assert.Equal(t, maxPooledBufferSize, outputSizeHint(1<<20))
}

func TestGetOutputBuffer_GrowsForRouteCount(t *testing.T) {
	for _, routes := range []int{0, 5, 100} {
		buf := getOutputBuffer(routes)
		assert.Zero(t, buf.Len())
		assert.GreaterOrEqual(t, buf.Cap(), outputSizeHint(routes))
		putOutputBuffer(buf)
	}
}

func TestOutputBufferPool_ResetsReturnedBuffers(t *testing.T) {
	buf := getOutputBuffer(1)
	buf.WriteString("export type Pet = number ;")
	putOutputBuffer(buf)

	again := getOutputBuffer(1)
	assert.Zero(t, again.Len())
	putOutputBuffer(again)
}

func TestOutputBufferPool_NilAndOversized(t *testing.T) {
	assert.NotPanics(t, func() { putOutputBuffer(nil) })

	huge := bytes.NewBuffer(make([]byte, 0, maxPooledBufferSize+1))
	assert.NotPanics(t, func() { putOutputBuffer(huge) })
}

func BenchmarkOutputBuffer_WithPool(b *testing.B) {
	for b.Loop() {
		buf := getOutputBuffer(25)
		buf.WriteString("export type Pet = ( { 'id' : number , } ) ;")
		putOutputBuffer(buf)
	}
}
