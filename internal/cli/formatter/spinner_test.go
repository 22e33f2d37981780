package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_WritesFramesAndClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "syncing plan")
	s.Start()
	time.Sleep(4 * spinnerInterval)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "syncing plan")
	assert.Contains(t, out, "\r\033[K")
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working")
	s.Start()
	s.Stop()
	s.Stop()
}
