package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNoInput is returned when there is no file argument and stdin is a
// terminal.
var ErrNoInput = errors.New("requires file or pipe")

// source is the file being paged: a named file or stdin.
type source struct {
	*os.File
	regular bool
	owned   bool
}

// Followable reports whether the input is a regular file that can be
// watched for growth.
func (s *source) Followable() bool {
	return s.regular
}

// Close closes the file if it was opened here. Stdin is left alone.
func (s *source) Close() error {
	if !s.owned {
		return nil
	}
	return s.File.Close()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// openInput opens the file named by args, or falls back to stdin when it
// is not a terminal.
func openInput(args []string, stdin *os.File, isTTY func(*os.File) bool) (*source, error) {
	if len(args) == 0 {
		if stdin == nil || isTTY(stdin) {
			return nil, ErrNoInput
		}
		return &source{File: stdin, regular: isRegular(stdin)}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s: is a directory", args[0])
	}
	return &source{File: f, regular: info.Mode().IsRegular(), owned: true}, nil
}

func isRegular(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}
