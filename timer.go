package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const fallInterval = 500 * time.Millisecond

type tickMsg struct {
	gen int
}

// fallTimer schedules gravity ticks for the running game. Every start and
// stop bumps the generation, and a tick whose generation is not current is
// dropped, so at most one tick chain is ever live.
type fallTimer struct {
	gen      int
	running  bool
	interval time.Duration
}

func newFallTimer(interval time.Duration) fallTimer {
	return fallTimer{interval: interval}
}

func (t *fallTimer) start() tea.Cmd {
	t.gen++
	t.running = true
	return t.next()
}

func (t *fallTimer) stop() {
	t.gen++
	t.running = false
}

// accept reports whether msg belongs to the live tick chain.
func (t *fallTimer) accept(msg tickMsg) bool {
	return t.running && msg.gen == t.gen
}

func (t *fallTimer) next() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}
