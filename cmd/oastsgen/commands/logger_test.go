package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown", "routes", 3)
	log.Error("also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "routes=3")
	assert.Contains(t, out, "also shown")
}

func TestLogger_VerboseAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, true).With("source", "api.yaml")
	log.Debug("document loaded", "bytes", 42)

	out := buf.String()
	assert.Contains(t, out, "document loaded")
	assert.Contains(t, out, "source=api.yaml")
	assert.Contains(t, out, "bytes=42")
}
