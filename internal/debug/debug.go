package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/whereami/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// debugOutput is the writer for debug output (defaults to nil, meaning no output)
var debugOutput io.Writer

// warnOutput receives non-fatal diagnostics
var warnOutput io.Writer = os.Stderr

// debugMutex protects access to the writers
var debugMutex sync.Mutex

// SetDebugOutput sets a custom writer for debug output.
// Pass nil to disable debug output entirely.
func SetDebugOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
}

// SetWarnOutput sets the writer for warnings. Pass nil to discard them.
func SetWarnOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	warnOutput = w
}

// Enable turns debug output on for the rest of the run (the --debug flag)
func Enable() {
	EnableDebug = "true"
}

// IsDebugEnabled returns true if debug mode is enabled
func IsDebugEnabled() bool {
	return EnableDebug == "true"
}

func getDebugWriter() io.Writer {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return debugOutput
}

// Printf prints debug information only when debug mode is enabled and output is configured
func Printf(format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG] "+format, args...)
}

// Log provides structured debug logging with component names
func Log(component, format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]interface{}{component}, args...)...)
}

// LogSource logs file loading
func LogSource(format string, args ...interface{}) {
	Log("SOURCE", format, args...)
}

// LogLayout logs the indentation pass
func LogLayout(format string, args ...interface{}) {
	Log("LAYOUT", format, args...)
}

// Warn writes a diagnostic line regardless of debug mode.
func Warn(err error) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	if warnOutput == nil {
		return
	}
	fmt.Fprintln(warnOutput, err.Error())
}
