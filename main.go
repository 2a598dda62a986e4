package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/editor-menubar/internal/app"
	"github.com/atomicstack/editor-menubar/internal/config"
	"github.com/atomicstack/editor-menubar/internal/logging"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	terminal := probeTerminal()
	events.App.Start(startupTracePayload(runtimeCfg, terminal))
	if !terminal.Interactive {
		fmt.Fprintln(os.Stderr, "editor-menubar needs an interactive terminal on stdin and stdout")
		os.Exit(2)
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records the resolved menu bar configuration and
// runtime context as the session's first trace entry.
func startupTracePayload(cfg config.Config, terminal terminalInfo) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"menubar": map[string]interface{}{
			"visibility": cfg.App.Visibility,
			"titleBar":   cfg.App.TitleBar,
			"mnemonics":  cfg.App.Mnemonics,
			"width":      cfg.App.Width,
			"height":     cfg.App.Height,
		},
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
		"terminal": terminal,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// terminalInfo is what the standard descriptors look like at startup.
// The bar needs an interactive stdin/stdout pair; the rest is trace
// context.
type terminalInfo struct {
	Interactive bool            `json:"interactive"`
	Width       int             `json:"width,omitempty"`
	Height      int             `json:"height,omitempty"`
	Terminals   map[string]bool `json:"terminals"`
}

func probeTerminal() terminalInfo {
	info := terminalInfo{Terminals: make(map[string]bool, 3)}
	for name, fd := range map[string]uintptr{
		"stdin":  os.Stdin.Fd(),
		"stdout": os.Stdout.Fd(),
		"stderr": os.Stderr.Fd(),
	} {
		info.Terminals[name] = term.IsTerminal(int(fd))
	}
	if info.Terminals["stdout"] {
		if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			info.Width = width
			info.Height = height
		}
	}
	info.Interactive = info.Terminals["stdin"] && info.Terminals["stdout"]
	return info
}
