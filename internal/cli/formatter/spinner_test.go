package formatter

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// lockedBuffer is written by the spinner goroutine and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartSpinner_DrawsAndClears(t *testing.T) {
	var out lockedBuffer

	stop := StartSpinner(&out, "Detecting location…")
	time.Sleep(250 * time.Millisecond)
	stop()

	got := stripANSI(out.String())
	assert.Contains(t, got, "Detecting location…")
	assert.True(t, strings.HasSuffix(out.String(), "\r\033[K"), "line not cleared: %q", out.String())
	assert.NotContains(t, got, " 0s")
}

func TestStartSpinner_StopTwice(t *testing.T) {
	var out lockedBuffer

	stop := StartSpinner(&out, "working")
	stop()
	n := len(out.String())
	stop()

	assert.Equal(t, n, len(out.String()))
}
