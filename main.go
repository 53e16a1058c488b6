package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ByrboxRepo/tetris/internal/config"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	configPath := flag.String("config", "", "settings file (default: user config dir)")
	seed := flag.Uint64("seed", 0, "piece sequence seed, 0 for random")
	flag.Parse()
	EnableDebugLogging(*debug)
	defer closeDebugLog()
	debugLog().Info("tetris start", "debug", *debug, "seed", *seed)

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			debugLog().Warn("no config directory, settings will not be saved", "err", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		debugLog().Warn("config load failed, using defaults", "path", path, "err", err)
	}

	model := NewModel(cfg, path, *seed)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if m, ok := final.(Model); ok {
		m.leaveGame()
	}
	if err != nil {
		debugLog().Error("program error", "err", err)
		closeDebugLog()
		os.Exit(1)
	}
}
