package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	debugMu     sync.Mutex
	debugFile   *os.File
	debugLogger = slog.New(slog.DiscardHandler)
)

// EnableDebugLogging routes debug records to tetris-debug.log in the temp
// directory. The terminal belongs to the TUI, so nothing is ever logged to
// stdout or stderr.
func EnableDebugLogging(enabled bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !enabled {
		debugLogger = slog.New(slog.DiscardHandler)
		return
	}
	if debugFile == nil {
		path := filepath.Join(os.TempDir(), "tetris-debug.log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		debugFile = file
	}
	debugLogger = slog.New(slog.NewTextHandler(debugFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func debugLog() *slog.Logger {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugLogger
}

func closeDebugLog() {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile != nil {
		_ = debugFile.Close()
		debugFile = nil
	}
	debugLogger = slog.New(slog.DiscardHandler)
}
