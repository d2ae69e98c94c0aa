package avi

import (
	"fmt"
	"log"
	"os"
)

// Reporter receives progress and diagnostic events emitted while opening or
// decoding an AVI source. It is the Go counterpart of the original reader's
// status-bar and log-panel callbacks.
type Reporter interface {
	// Log reports a diagnostic event at the given level ("debug", "warn").
	Log(level, msg string)
	// Progress reports fractional completion of the current decode, in
	// [0, 1]. Callers may receive it more than once per frame; implementations
	// should be cheap to call from a decode loop.
	Progress(fraction float64)
}

// NoopReporter discards everything. It is the default used by Open when no
// Reporter is supplied.
type NoopReporter struct{}

func (NoopReporter) Log(level, msg string) {}
func (NoopReporter) Progress(fraction float64) {}

// StdReporter reports through a *log.Logger, in the teacher's style of
// building diagnostics on the standard logging package rather than a
// third-party logging library.
type StdReporter struct {
	Logger *log.Logger
	// Verbose enables "debug"-level Log calls; "warn" is always reported.
	Verbose bool
}

// NewStdReporter returns a StdReporter writing to os.Stderr.
func NewStdReporter(verbose bool) *StdReporter {
	return &StdReporter{Logger: log.New(os.Stderr, "avi: ", 0), Verbose: verbose}
}

func (r *StdReporter) Log(level, msg string) {
	if level == "debug" && !r.Verbose {
		return
	}
	r.Logger.Printf("%s: %s", level, msg)
}

func (r *StdReporter) Progress(fraction float64) {
	if !r.Verbose {
		return
	}
	r.Logger.Print(fmt.Sprintf("progress: %.1f%%", fraction*100))
}
