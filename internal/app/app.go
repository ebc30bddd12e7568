// Package app provides the pager's controller. It owns the views, merges
// terminal events with incoming lines, and manages the terminal lifecycle.
package app

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/yap/internal/document"
	"github.com/dshills/yap/internal/renderer/backend"
	"github.com/dshills/yap/internal/renderer/core"
	"github.com/dshills/yap/internal/renderer/statusline"
	"github.com/dshills/yap/internal/renderer/viewport"
)

// LineSource produces the lines being paged.
type LineSource interface {
	// Run sends lines to out until the input ends, ctx is done or Cancel
	// is called. It does not close out.
	Run(ctx context.Context, out chan<- string) error

	// Cancel interrupts Run. It may be called more than once.
	Cancel()
}

// Options configures the application.
type Options struct {
	// Logger receives structured logs. Nil discards them.
	Logger *slog.Logger

	// StatusStyle is the status bar style. The zero value means reverse
	// video.
	StatusStyle core.Style
}

type state int

const (
	stateNormal state = iota
	stateHelp
)

// Application is the pager controller. Views, documents and drawing are
// only touched from the goroutine running Run.
type Application struct {
	backend backend.Backend
	source  LineSource
	logger  *slog.Logger

	// primary shows the streamed input; help is the overlay, nil when hidden.
	primary *viewport.DocumentView
	help    *viewport.DocumentView
	state   state

	status *statusline.StatusLine

	// size is the terminal size; views get size minus paneMargin.
	size core.Vec2
	exit bool

	running atomic.Bool
}

// paneMargin is the space around the document pane. The bottom row of it
// holds the status bar.
var paneMargin = core.Vec2{X: 2, Y: 2}

// New creates an application drawing through b and paging lines from source.
func New(b backend.Backend, source LineSource, opts Options) (*Application, error) {
	if b == nil {
		return nil, ErrNoBackend
	}
	if source == nil {
		return nil, ErrNoSource
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	style := opts.StatusStyle
	if style.Equals(core.Style{}) {
		style = statusline.DefaultStyle()
	}

	return &Application{
		backend: b,
		source:  source,
		logger:  logger.With("component", "app"),
		primary: viewport.New(document.NewStream(0), core.Vec2{}),
		status:  statusline.New(hintNormal, style),
	}, nil
}

// Run takes over the terminal and pages input until the user quits, the
// terminal event stream ends or ctx is done. The terminal is restored on
// every return path, including a panic, which is returned as a
// *RecoveredPanicError.
func (a *Application) Run(ctx context.Context) (err error) {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer a.backend.Shutdown()

	defer a.recoverPanic(&err)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.source.Cancel()

	w, h := a.backend.Size()
	if err := a.handleResize(w, h); err != nil {
		return err
	}

	events := make(chan backend.Event)
	lines := make(chan string)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer a.recoverPanic(&err)
		return a.pumpEvents(gctx, events)
	})
	g.Go(func() (err error) {
		defer close(lines)
		defer a.recoverPanic(&err)
		if rerr := a.source.Run(gctx, lines); rerr != nil {
			return NewComponentError("input", "read", rerr)
		}
		return nil
	})

	a.logger.Info("started", "width", w, "height", h)
	loopErr := a.loop(gctx, events, lines)

	// Unblock both pumps before waiting on them.
	cancel()
	a.source.Cancel()
	a.backend.Shutdown()
	waitErr := g.Wait()

	a.logger.Info("stopped", "lines", a.primary.Document().Len())

	if loopErr != nil {
		return loopErr
	}
	if waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return waitErr
	}
	return nil
}

// recoverPanic turns a panic on the calling goroutine into a
// RecoveredPanicError stored in *err. It must be deferred directly.
// A panic in either pump then cancels the group and Run still restores
// the terminal.
func (a *Application) recoverPanic(err *error) {
	if r := recover(); r != nil {
		perr := NewRecoveredPanicError(r, string(debug.Stack()))
		a.logger.Error("recovered panic", "panic", perr.Summary(), "stack", perr.Stack)
		*err = perr
	}
}

// IsRunning reports whether Run is active.
func (a *Application) IsRunning() bool {
	return a.running.Load()
}

// Document returns the document holding the streamed input.
func (a *Application) Document() document.Document {
	return a.primary.Document()
}

// active returns the view that receives navigation and is on screen.
func (a *Application) active() *viewport.DocumentView {
	if a.state == stateHelp {
		return a.help
	}
	return a.primary
}

// pane returns the document pane size for the current terminal size.
func (a *Application) pane() core.Vec2 {
	return a.size.Sub(paneMargin)
}
