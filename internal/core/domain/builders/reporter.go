package builders

import (
	"fmt"
	"io"
	"log/slog"
)

// Reporter receives the progress notice emitted by every build step.
// Notices are informational and never part of the house.
type Reporter interface {
	Report(notice string)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(notice string)

// Report calls f(notice).
func (f ReporterFunc) Report(notice string) {
	f(notice)
}

// Discard drops every notice.
var Discard Reporter = ReporterFunc(func(string) {})

// WriterReporter prints each notice on its own line, as the console demo does.
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter creates a WriterReporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Report writes notice followed by a newline. Write errors are ignored.
func (r *WriterReporter) Report(notice string) {
	_, _ = fmt.Fprintln(r.w, notice)
}

// SlogReporter logs each notice at Info level. Attach identifying attributes
// (house id, variant) to the logger before handing it over.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a SlogReporter logging through logger.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	return &SlogReporter{logger: logger}
}

// Report logs notice as the message of an Info record.
func (r *SlogReporter) Report(notice string) {
	r.logger.Info(notice)
}
