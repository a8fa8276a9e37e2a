package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOutputCapture_PipeToLogger(t *testing.T) {
	var buf bytes.Buffer
	c := NewOutputCapture()
	c.Attach(zerolog.New(&buf))

	c.pipeToLogger(strings.NewReader("first line\n\nsecond line\n"), "stderr")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"stream":"stderr"`)
	assert.Contains(t, lines[0], `"message":"first line"`)
	assert.Contains(t, lines[1], `"message":"second line"`)
}

func TestOutputCapture_StopWithoutStart(t *testing.T) {
	c := NewOutputCapture()
	c.Stop()
	assert.NotNil(t, c.Stderr())
}
