package jovi

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so operators never
// build the attributes of their debug record while jovi is silent.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by every operator. Pipelines may swap
// it while other goroutines are filtering buffers.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes operator diagnostics to l. A nil l makes jovi silent
// again, which is also the state before the first call.
//
// Each operator writes a single [slog.LevelDebug] record named after the
// operator, for example "crop" or "threshold", carrying its parameters.
// Crop logs the resolved pixel box rather than the fractional one.
// ResetCaches logs how many kernels and scratch buffers it dropped.
// Operators never fail, so nothing is logged above debug level.
//
// To trace a pipeline on stderr:
//
//	jovi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger operators write to. It may be called from any
// goroutine.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
