package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"affiliate_bot/internal/domain"
)

// SinkFunc adapts a function to ReportSink.
type SinkFunc func(ctx context.Context, rec *domain.PublicationRecord) error

func (f SinkFunc) Record(ctx context.Context, rec *domain.PublicationRecord) error {
	return f(ctx, rec)
}

type namedSink struct {
	name string
	sink ReportSink
}

// Recorder hands every finished publication to all registered sinks.
type Recorder struct {
	sinks  []namedSink
	logger *slog.Logger
}

func NewRecorder(logger *slog.Logger) *Recorder {
	return &Recorder{logger: logger.With("component", "recorder")}
}

func (r *Recorder) Add(name string, sink ReportSink) {
	r.sinks = append(r.sinks, namedSink{name: name, sink: sink})
}

func (r *Recorder) Len() int {
	return len(r.sinks)
}

// Record calls every sink even when some fail and returns the combined error.
func (r *Recorder) Record(ctx context.Context, rec *domain.PublicationRecord) error {
	var result *multierror.Error
	for _, s := range r.sinks {
		if err := s.sink.Record(ctx, rec); err != nil {
			r.logger.Warn("sink failed",
				"sink", s.name,
				"publication_id", rec.ID,
				"error", err,
			)
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		r.logger.Debug("publication recorded", "sink", s.name, "publication_id", rec.ID)
	}
	return result.ErrorOrNil()
}
