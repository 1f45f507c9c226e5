package registry

import "log/slog"

// Sink receives rendered board rows for observability. The registry feeds
// it on every create, get, and advance; it never depends on the sink
// being present or succeeding.
type Sink interface {
	Rows(label string, rows []string)
}

// NopSink discards everything. It is the default sink.
type NopSink struct{}

// Rows implements Sink.
func (NopSink) Rows(string, []string) {}

// SlogSink logs each board row at debug level through a slog.Logger.
type SlogSink struct {
	Logger *slog.Logger
}

// Rows implements Sink.
func (s SlogSink) Rows(label string, rows []string) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	for i, row := range rows {
		logger.Debug(label, "y", i, "row", row)
	}
}
