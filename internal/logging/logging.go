package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "editor-menubar.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

// Configure sets the log destination. Empty values fall back to the
// default path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetTraceEnabled toggles emission of trace entries. Errors are
// written regardless.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// entry is one JSON line in the shared log. Scope is the subsystem
// half of a dotted event name, so a tail can be filtered per tracer.
type entry struct {
	Time    time.Time   `json:"time"`
	Scope   string      `json:"scope"`
	Event   string      `json:"event"`
	Error   string      `json:"error,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends a structured entry when tracing is enabled. Event
// names are dotted "scope.action" pairs emitted by the events package.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	scope, action := splitEvent(event)
	appendEntry(entry{
		Time:    time.Now().UTC(),
		Scope:   scope,
		Event:   action,
		Payload: payload,
	})
}

// Error records a failure in the same JSON-lines form as traces, so
// one tail shows the whole session.
func Error(err error) {
	if err == nil {
		return
	}
	appendEntry(entry{
		Time:  time.Now().UTC(),
		Scope: "app",
		Event: "error",
		Error: err.Error(),
	})
}

func splitEvent(event string) (string, string) {
	if i := strings.IndexByte(event, '.'); i > 0 {
		return event[:i], event[i+1:]
	}
	return "app", event
}

func appendEntry(e entry) {
	mu.Lock()
	defer mu.Unlock()
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(e); err != nil {
		fmt.Fprintf(os.Stderr, "log encoding failed: %v\n", err)
	}
}
