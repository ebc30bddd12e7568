// Package input reads the text being paged, one line at a time.
//
// A Reader turns a byte stream into display-ready lines and sends them on
// a channel until the stream ends or the reader is cancelled. Reads are
// made through a cancelreader so that a read blocked on a quiet pipe can be
// interrupted at shutdown. In follow mode a regular file is watched with
// fsnotify and reading resumes each time the file grows.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/cancelreader"
)

// ErrFollowClosed is returned when the followed file's watcher shuts down
// unexpectedly.
var ErrFollowClosed = errors.New("follow watcher closed")

// Option configures a Reader.
type Option func(*Reader)

// WithFollow keeps reading path after EOF, like tail -f.
func WithFollow(path string) Option {
	return func(r *Reader) {
		r.follow = path
	}
}

// WithTabWidth expands tabs to stops every n columns. Zero leaves tabs alone.
func WithTabWidth(n int) Option {
	return func(r *Reader) {
		r.tabWidth = max(n, 0)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// Reader streams lines from an input.
type Reader struct {
	src      cancelreader.CancelReader
	follow   string
	tabWidth int
	logger   *slog.Logger

	watcher *fsnotify.Watcher

	done       chan struct{}
	cancelOnce sync.Once
	closeOnce  sync.Once
}

// NewReader wraps src. When src is a file descriptor that cannot be polled
// (a regular file on Linux, for example) reads are not interruptible, but
// Cancel still stops the reader before its next read.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	r := &Reader{
		logger: slog.New(slog.DiscardHandler),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "input")

	cr, err := cancelreader.NewReader(src)
	if err != nil {
		r.logger.Debug("input is not pollable, reads cannot be interrupted", "error", err)
		// Hiding the file methods selects the fallback reader.
		cr, err = cancelreader.NewReader(struct{ io.Reader }{src})
		if err != nil {
			return nil, fmt.Errorf("wrap input: %w", err)
		}
	}
	r.src = cr

	if r.follow != "" {
		// The watch is set up before the first read so no growth is missed.
		w, err := fsnotify.NewWatcher()
		if err != nil {
			_ = cr.Close()
			return nil, fmt.Errorf("create watcher: %w", err)
		}
		if err := w.Add(r.follow); err != nil {
			_ = w.Close()
			_ = cr.Close()
			return nil, fmt.Errorf("watch %s: %w", r.follow, err)
		}
		r.watcher = w
	}

	return r, nil
}

// Run reads lines and sends them to out until the input ends, ctx is done
// or Cancel is called. End of input and cancellation return nil; any other
// read failure is returned. Run does not close out.
func (r *Reader) Run(ctx context.Context, out chan<- string) error {
	defer r.close()

	br := bufio.NewReader(r.src)
	var pending strings.Builder
	count := 0

	send := func(line string) bool {
		select {
		case out <- line:
			count++
			return true
		case <-ctx.Done():
			return false
		case <-r.done:
			return false
		}
	}

	for {
		chunk, err := br.ReadString('\n')
		pending.WriteString(chunk)

		if err == nil {
			if !send(r.normalize(pending.String())) {
				return nil
			}
			pending.Reset()
			continue
		}

		if errors.Is(err, cancelreader.ErrCanceled) || r.canceled() {
			r.logger.Debug("input cancelled", "lines", count)
			return nil
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}

		if r.watcher != nil {
			more, err := r.waitForGrowth(ctx)
			if err != nil {
				return err
			}
			if more {
				continue
			}
		}

		// A last line without a newline is still a line.
		if pending.Len() > 0 {
			send(r.normalize(pending.String()))
		}
		r.logger.Debug("input finished", "lines", count)
		return nil
	}
}

// waitForGrowth blocks until the followed file is written to. It reports
// false when reading should stop: the file was removed or renamed, or the
// reader was cancelled.
func (r *Reader) waitForGrowth(ctx context.Context) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, nil
		case <-r.done:
			return false, nil
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return false, ErrFollowClosed
			}
			switch {
			case ev.Has(fsnotify.Write):
				return true, nil
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				r.logger.Info("followed file went away", "path", ev.Name, "op", ev.Op.String())
				return false, nil
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return false, ErrFollowClosed
			}
			return false, fmt.Errorf("watch %s: %w", r.follow, err)
		}
	}
}

// Cancel stops Run. A read blocked on a pollable input is interrupted.
// It is safe to call more than once and from any goroutine.
func (r *Reader) Cancel() {
	r.cancelOnce.Do(func() {
		close(r.done)
		r.src.Cancel()
	})
}

func (r *Reader) canceled() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

func (r *Reader) close() {
	r.closeOnce.Do(func() {
		if r.watcher != nil {
			if err := r.watcher.Close(); err != nil {
				r.logger.Warn("close watcher", "error", err)
			}
		}
		if err := r.src.Close(); err != nil {
			r.logger.Warn("close input", "error", err)
		}
	})
}
