package diagnostic

import (
	"context"
	"log/slog"
)

// Sink receives diagnostics as they are produced. Reporting is
// fire-and-forget: a sink must not fail the caller.
type Sink interface {
	Report(d Diagnostic)
}

// Discard drops every diagnostic.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}

// SlogSink writes diagnostics to a structured logger.
type SlogSink struct {
	Logger *slog.Logger
}

// NewSlogSink returns a sink logging to l, or to slog.Default when l is nil.
func NewSlogSink(l *slog.Logger) SlogSink {
	if l == nil {
		l = slog.Default()
	}

	return SlogSink{Logger: l}
}

// Report implements Sink.
func (s SlogSink) Report(d Diagnostic) {
	attrs := []slog.Attr{slog.String("code", d.Code)}
	if d.Resource != "" {
		attrs = append(attrs, slog.String("resource", d.Resource))
	}

	if d.Key != "" {
		attrs = append(attrs, slog.String("key", d.Key))
	}

	if len(d.Suggestions) > 0 {
		attrs = append(attrs, slog.Any("suggestions", d.Suggestions))
	}

	s.Logger.LogAttrs(context.Background(), d.Severity.level(), d.Message, attrs...)
}

func (s DiagnosticSeverity) level() slog.Level {
	switch s {
	case DiagnosticError:
		return slog.LevelError
	case DiagnosticWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Tee fans a diagnostic out to several sinks.
type Tee []Sink

// Report implements Sink.
func (t Tee) Report(d Diagnostic) {
	for _, s := range t {
		if s != nil {
			s.Report(d)
		}
	}
}
