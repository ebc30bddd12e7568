package app

import (
	"context"
	"errors"

	"github.com/dshills/yap/internal/renderer/backend"
)

// pumpEvents forwards terminal events to out until the backend is shut
// down or ctx is done. It closes out when it returns.
func (a *Application) pumpEvents(ctx context.Context, out chan<- backend.Event) error {
	defer close(out)
	for {
		ev := a.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop handles events and lines one at a time until exit is requested.
// When both channels are ready select picks one at random, so a fast
// input cannot starve the keyboard or the other way round.
func (a *Application) loop(ctx context.Context, events <-chan backend.Event, lines <-chan string) error {
	for !a.exit {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				a.logger.Debug("terminal event stream ended")
				a.exit = true
				continue
			}
			if err := a.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					a.exit = true
					continue
				}
				return err
			}

		case line, ok := <-lines:
			if !ok {
				a.logger.Debug("input ended", "lines", a.primary.Document().Len())
				lines = nil
				continue
			}
			if err := a.handleLine(line); err != nil {
				return err
			}
		}
	}
	return nil
}
