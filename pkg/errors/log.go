package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs recovered panics to stderr.
type LogHandler struct {
	// Verbose enables stack trace output.
	Verbose bool
}

// HandlePanic logs a DispatchPanic to stderr.
func (h *LogHandler) HandlePanic(err *DispatchPanic) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[signals panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[signals panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
