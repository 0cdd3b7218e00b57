// Package worker drains the audit inbox into one or more sinks.
package worker

import (
	"context"
	"log/slog"

	audit "watchgate/pkg/platform/audit"
)

// Worker consumes audit events from a channel and fans them out to every
// configured sink. A failing sink is logged and skipped; the trail in the
// remaining sinks stays intact.
type Worker struct {
	inbox  <-chan audit.Event
	sinks  []audit.Store
	logger *slog.Logger
}

func New(inbox <-chan audit.Event, logger *slog.Logger, sinks ...audit.Store) *Worker {
	return &Worker{inbox: inbox, sinks: sinks, logger: logger}
}

// Run blocks until ctx is cancelled, draining any events already queued.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			w.dispatch(ctx, event)
		}
	}
}

func (w *Worker) dispatch(ctx context.Context, event audit.Event) {
	for _, sink := range w.sinks {
		if err := sink.Append(ctx, event); err != nil {
			if w.logger != nil {
				w.logger.ErrorContext(ctx, "audit sink append failed",
					"action", event.Action,
					"run_id", event.RunID,
					"error", err,
				)
			}
		}
	}
}
