package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func always(v bool) func(*os.File) bool {
	return func(*os.File) bool { return v }
}

func TestOpenInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))

	src, err := openInput([]string{path}, nil, always(true))
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, path, src.Name())
	assert.True(t, src.Followable())
}

func TestOpenInputMissingFile(t *testing.T) {
	_, err := openInput([]string{filepath.Join(t.TempDir(), "nope")}, nil, always(false))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenInputDirectory(t *testing.T) {
	_, err := openInput([]string{t.TempDir()}, nil, always(false))
	assert.ErrorContains(t, err, "is a directory")
}

func TestOpenInputTerminalStdin(t *testing.T) {
	_, err := openInput(nil, os.Stdin, always(true))
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Equal(t, "requires file or pipe", err.Error())
}

func TestOpenInputPipe(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pr.Close()
		_ = pw.Close()
	})

	src, err := openInput(nil, pr, always(false))
	require.NoError(t, err)
	assert.False(t, src.Followable())

	// Stdin is not ours to close.
	require.NoError(t, src.Close())
	_, err = pw.WriteString("still open\n")
	assert.NoError(t, err)
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"a", "b"})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandInvalidConfig(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--tab-width=-2", "whatever"})
	assert.ErrorContains(t, cmd.Execute(), "tab-width")
}
