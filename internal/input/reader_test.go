package input

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 5 * time.Second

// readAll runs r to completion and returns everything it sent.
func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	out := make(chan string, 100)
	require.NoError(t, r.Run(context.Background(), out))
	close(out)

	lines := []string{}
	for line := range out {
		lines = append(lines, line)
	}
	return lines
}

func receive(t *testing.T, out <-chan string) string {
	t.Helper()
	select {
	case line := <-out:
		return line
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for a line")
		return ""
	}
}

func TestRunLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  []string
	}{
		{"empty input", "", nil, []string{}},
		{"newline terminated", "a\nb\n", nil, []string{"a", "b"}},
		{"final line without newline", "a\nb", nil, []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", nil, []string{"a", "b"}},
		{"blank lines", "\n\n", nil, []string{"", ""}},
		{"invalid utf8", "a\xffb\n", nil, []string{"a�b"}},
		{"multibyte", "héllo wörld\n", nil, []string{"héllo wörld"}},
		{"tabs kept by default", "a\tb\n", nil, []string{"a\tb"}},
		{"tabs expanded", "a\tb\n\tc\n", []Option{WithTabWidth(4)}, []string{"a   b", "    c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(strings.NewReader(tt.input), tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, readAll(t, r))
		})
	}
}

func TestRunLongLine(t *testing.T) {
	long := strings.Repeat("x", 100_000)
	r, err := NewReader(strings.NewReader(long + "\nshort\n"))
	require.NoError(t, err)

	lines := readAll(t, r)
	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[0])
	assert.Equal(t, "short", lines[1])
}

func TestCancelBeforeRun(t *testing.T) {
	r, err := NewReader(strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	r.Cancel()
	r.Cancel()

	assert.Empty(t, readAll(t, r))
}

func TestContextCancelWhileSending(t *testing.T) {
	r, err := NewReader(strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan string)
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx, out) }()

	assert.Equal(t, "a", receive(t, out))
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("Run did not return after context cancel")
	}
}

func TestCancelBlockedPipe(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pr.Close()
		_ = pw.Close()
	})

	r, err := NewReader(pr)
	require.NoError(t, err)

	out := make(chan string, 10)
	errc := make(chan error, 1)
	go func() { errc <- r.Run(context.Background(), out) }()

	_, err = pw.WriteString("first\n")
	require.NoError(t, err)
	assert.Equal(t, "first", receive(t, out))

	// The writer stays open so the reader is blocked in Read.
	r.Cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("Run did not return after Cancel")
	}
}

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	r, err := NewReader(f, WithFollow(path))
	require.NoError(t, err)

	out := make(chan string, 10)
	errc := make(chan error, 1)
	go func() { errc <- r.Run(context.Background(), out) }()

	assert.Equal(t, "one", receive(t, out))

	w, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	_, err = w.WriteString("two\nthr")
	require.NoError(t, err)
	assert.Equal(t, "two", receive(t, out))

	_, err = w.WriteString("ee\n")
	require.NoError(t, err)
	assert.Equal(t, "three", receive(t, out))

	r.Cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("Run did not return after Cancel")
	}
}

func TestFollowMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")
	_, err := NewReader(strings.NewReader(""), WithFollow(path))
	assert.Error(t, err)
}
