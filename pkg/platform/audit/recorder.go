package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Recorder is the producing side of the audit trail. Implementations must
// be cheap and non-blocking so screening latency never depends on sinks.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

// ChannelRecorder hands events to a worker through a buffered channel.
// When the buffer is full the event is dropped and logged rather than
// blocking the screening path.
type ChannelRecorder struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewChannelRecorder(inbox chan<- Event, logger *slog.Logger) *ChannelRecorder {
	return &ChannelRecorder{inbox: inbox, logger: logger}
}

func (r *ChannelRecorder) Record(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case r.inbox <- event:
	default:
		if r.logger != nil {
			r.logger.WarnContext(ctx, "audit inbox full, event dropped",
				"action", event.Action,
				"run_id", event.RunID,
			)
		}
	}
}

// NopRecorder discards events. Used by the CLI and in tests that do not
// assert on the audit trail.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}
