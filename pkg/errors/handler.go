package errors

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// handler is the installed global handler, nil by default. Like the rest of
// the library it expects a single logical thread of control: install a
// handler before dispatch begins, not concurrently with it.
var handler Handler

// SetHandler installs h as the global panic handler. Pass nil to remove it
// and restore propagate-on-panic behavior.
func SetHandler(h Handler) {
	handler = h
}

// Installed reports whether a handler is currently installed.
func Installed() bool {
	return handler != nil
}

// ReportPanic sends a recovered panic to the installed handler. With no
// handler installed it is a no-op.
func ReportPanic(err *DispatchPanic) {
	if err == nil || handler == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handler.HandlePanic(err)
}

// Recover is a deferred helper that reports a recovered panic.
// Usage: defer errors.Recover("signal.Emit")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&DispatchPanic{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the current call stack as a string. It skips the
// first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
