package output

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestProgressDisabledWithoutColor(t *testing.T) {
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(true) })

	p := NewProgress(3)
	assert.False(t, p.enabled)

	out := captureStdout(t, func() {
		p.Increment()
		p.Increment()
		p.Finish()
	})
	assert.Empty(t, out, "disabled progress must not emit control sequences")
	assert.Equal(t, 2, p.done)
}

func TestProgressDisabledWhenStdoutNotTerminal(t *testing.T) {
	// Under the pipe stdout is not a TTY even with color on.
	out := captureStdout(t, func() {
		p := NewProgress(2)
		assert.False(t, p.enabled)
		p.Increment()
		p.Finish()
	})
	assert.Empty(t, out)
}
