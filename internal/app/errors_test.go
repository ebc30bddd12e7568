package app

import (
	"errors"
	"fmt"
	"testing"
)

func TestComponentError(t *testing.T) {
	base := errors.New("disk full")

	tests := []struct {
		name string
		err  *ComponentError
		want string
	}{
		{"full", NewComponentError("renderer", "draw", base), "renderer: draw: disk full"},
		{"no action", NewComponentError("input", "", base), "input: disk full"},
		{"no error", NewComponentError("input", "read", nil), "input: read"},
		{"component only", NewComponentError("input", "", nil), "input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComponentErrorIs(t *testing.T) {
	base := errors.New("disk full")
	err := NewComponentError("renderer", "draw", base)
	wrapped := fmt.Errorf("run: %w", err)

	if !errors.Is(wrapped, base) {
		t.Error("should match the wrapped error")
	}
	if !errors.Is(wrapped, err) {
		t.Error("should match itself")
	}
	if errors.Is(wrapped, NewComponentError("renderer", "draw", base)) {
		t.Error("should not match a different instance")
	}

	var nilErr *ComponentError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil || nilErr.Is(base) {
		t.Error("nil ComponentError should be inert")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("boom", "stack trace")
	if got := err.Error(); got != "panic: boom\nstack trace" {
		t.Errorf("Error() = %q", got)
	}
	if got := err.Summary(); got != "panic: boom" {
		t.Errorf("Summary() = %q", got)
	}
	if got := NewRecoveredPanicError(42, "").Error(); got != "panic: 42" {
		t.Errorf("Error() without stack = %q", got)
	}
}
