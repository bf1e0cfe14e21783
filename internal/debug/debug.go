package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/dunkmaster/hoopstats/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// MCPMode tracks if we're running in MCP mode (set by main). While an
// MCP stdio session is active, nothing may be written to stdout except
// protocol frames, so diagnostics go to stderr or are dropped.
var MCPMode = false

var (
	outputMutex sync.Mutex
	output      io.Writer = os.Stderr
)

// SetMCPMode enables MCP mode which keeps stdout clean for the protocol.
func SetMCPMode(enabled bool) {
	MCPMode = enabled
}

// SetOutput sets a custom writer for diagnostic output. Pass nil to
// disable diagnostics entirely.
func SetOutput(w io.Writer) {
	outputMutex.Lock()
	defer outputMutex.Unlock()
	output = w
}

// IsDebugEnabled returns true if debug diagnostics should be emitted.
func IsDebugEnabled() bool {
	if EnableDebug == "true" {
		return true
	}
	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		return true
	}
	return false
}

func writer() io.Writer {
	outputMutex.Lock()
	defer outputMutex.Unlock()
	return output
}

// Printf prints debug information only when debug mode is enabled.
func Printf(format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG] "+format, args...)
}

// Log provides structured debug logging with component names.
func Log(component, format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]interface{}{component}, args...)...)
}

// LogDataset provides debug logging for dataset load operations.
func LogDataset(format string, args ...interface{}) {
	Log("DATA", format, args...)
}

// LogMCP provides debug logging for MCP operations.
func LogMCP(format string, args ...interface{}) {
	Log("MCP", format, args...)
}

// LogBridge provides debug logging for the HTTP JSON-RPC bridge.
func LogBridge(format string, args ...interface{}) {
	Log("BRIDGE", format, args...)
}

// Fatal records a catastrophic error message and returns it as an error.
// Callers decide whether to exit; in MCP mode nothing reaches stdout.
func Fatal(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if w := writer(); w != nil && !MCPMode {
		fmt.Fprintf(w, "[FATAL] %s\n", msg)
	}
	return fmt.Errorf("fatal error: %s", msg)
}
