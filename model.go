package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ByrboxRepo/tetris/internal/config"
	"github.com/ByrboxRepo/tetris/internal/engine"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
)

const bannerDuration = 900 * time.Millisecond

type soundMsg struct{}

var menuItems = []string{
	"Start Game",
	"Themes",
	"Config",
	"Quit",
}

var configItems = []string{
	"Sound Effects",
	"Music",
	"Volume",
	"Ghost Piece",
}

// eventQueue collects engine events during one Update so they can be
// turned into commands once the engine call has returned.
type eventQueue struct {
	pending []engine.Event
}

func (q *eventQueue) push(ev engine.Event) {
	q.pending = append(q.pending, ev)
}

func (q *eventQueue) drain() []engine.Event {
	events := q.pending
	q.pending = nil
	return events
}

type Model struct {
	screen      Screen
	width       int
	height      int
	menuIndex   int
	configIndex int
	themeIndex  int
	config      config.Config
	configPath  string
	keys        map[string]config.Action
	seed        uint64
	gamesPlayed uint64
	game        *engine.Game
	events      *eventQueue
	timer       fallTimer
	paused      bool
	sound       *SoundEngine
	music       *MusicPlayer
	bannerLines int
	bannerDelta int
	bannerUntil time.Time
}

type modelOptions struct {
	config     config.Config
	configPath string
	seed       uint64
	sound      *SoundEngine
	music      *MusicPlayer
}

// NewModel opens the audio device and builds the menu screen.
func NewModel(cfg config.Config, configPath string, seed uint64) Model {
	ctx, sampleRate, err := initAudioContext(cfg.MusicFile)
	if err != nil {
		debugLog().Warn("audio context init failed", "err", err)
	}
	sound := NewSoundEngine(ctx, sampleRate, cfg.Sound)
	sound.SetVolume(volumeFromPercent(cfg.Volume))
	return newModel(modelOptions{
		config:     cfg,
		configPath: configPath,
		seed:       seed,
		sound:      sound,
		music:      NewMusicPlayer(ctx, cfg.MusicFile, volumeFromPercent(cfg.Volume)),
	})
}

func newModel(opts modelOptions) Model {
	cfg := opts.config
	if cfg.Keys == nil {
		cfg.Keys = config.DefaultKeys()
	}
	index := themeIndexByName(cfg.Theme)
	if index < 0 {
		index = 0
		cfg.Theme = themes[index].Name
	}
	m := Model{
		screen:     screenMenu,
		config:     cfg,
		configPath: opts.configPath,
		keys:       cfg.Keys.Bindings(),
		seed:       opts.seed,
		themeIndex: index,
		events:     &eventQueue{},
		timer:      newFallTimer(fallInterval),
		sound:      opts.sound,
		music:      opts.music,
	}
	m.game = m.newGame()
	return m
}

func (m *Model) newGame() *engine.Game {
	opts := []engine.Option{
		engine.WithListener(m.events.push),
		engine.WithLogger(debugLog()),
	}
	if m.seed != 0 {
		opts = append(opts, engine.WithSeed(m.seed+m.gamesPlayed))
	}
	m.gamesPlayed++
	return engine.NewGame(opts...)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen != screenGame || !m.timer.accept(msg) {
			return m, nil
		}
		m.game.Tick()
		cmd := m.handleEvents()
		if !m.timer.running {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.timer.next())
	case soundMsg:
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.leaveGame()
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

// handleEvents turns the engine events raised since the last call into
// sounds and on-screen feedback.
func (m *Model) handleEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.events.drain() {
		switch ev.Kind {
		case engine.EventLineClear:
			m.bannerLines = ev.Lines
			m.bannerDelta = ev.Lines * engine.PointsPerLine
			m.bannerUntil = time.Now().Add(bannerDuration)
			debugLog().Debug("lines cleared", "lines", ev.Lines, "score", m.game.Score())
		case engine.EventGameOver:
			m.timer.stop()
			m.music.Stop()
			debugLog().Info("game over", "score", m.game.Score(), "lines", m.game.Lines())
		}
		if m.config.Sound {
			cmds = append(cmds, playSound(m.sound, soundForEvent(ev)))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func playSound(sound *SoundEngine, event SoundEvent) tea.Cmd {
	return func() tea.Msg {
		sound.Play(event)
		return soundMsg{}
	}
}

func (m *Model) menuSound(event SoundEvent) tea.Cmd {
	if !m.config.Sound {
		return nil
	}
	return playSound(m.sound, event)
}

func (m *Model) startGame() tea.Cmd {
	m.game = m.newGame()
	m.events.drain()
	m.paused = false
	m.bannerUntil = time.Time{}
	m.screen = screenGame
	if m.config.Music {
		m.music.Start()
	}
	debugLog().Debug("game started", "piece", m.game.Piece().Kind.String())
	return m.timer.start()
}

func (m *Model) leaveGame() {
	m.timer.stop()
	m.music.Stop()
	m.paused = false
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
			return m.menuSound(SoundMenuMove)
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
			return m.menuSound(SoundMenuMove)
		}
	case "enter":
		cmd := m.menuSound(SoundMenuSelect)
		switch m.menuIndex {
		case 0:
			return tea.Batch(cmd, m.startGame())
		case 1:
			m.screen = screenThemes
			return cmd
		case 2:
			m.screen = screenConfig
			return cmd
		case 3:
			return tea.Quit
		}
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	action := m.keys[key]

	if m.game.GameOver() {
		switch {
		case key == "enter":
			return m.startGame()
		case action == config.ActionQuit:
			m.leaveGame()
			m.screen = screenMenu
		}
		return nil
	}

	if m.paused {
		switch action {
		case config.ActionPause:
			m.paused = false
			if m.config.Music {
				m.music.Start()
			}
			return m.timer.start()
		case config.ActionQuit:
			m.leaveGame()
			m.screen = screenMenu
		}
		return nil
	}

	switch action {
	case config.ActionLeft:
		m.game.Move(-1, 0)
	case config.ActionRight:
		m.game.Move(1, 0)
	case config.ActionDown:
		m.game.Move(0, 1)
	case config.ActionRotate:
		m.game.Rotate()
	case config.ActionPause:
		m.paused = true
		m.timer.stop()
		m.music.Stop()
		return nil
	case config.ActionQuit:
		m.leaveGame()
		m.screen = screenMenu
		return nil
	default:
		return nil
	}
	return m.handleEvents()
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
			return m.menuSound(SoundMenuMove)
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
			return m.menuSound(SoundMenuMove)
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		m.saveConfig()
		m.screen = screenMenu
		return m.menuSound(SoundMenuSelect)
	case "q", "esc":
		m.themeIndex = max(themeIndexByName(m.config.Theme), 0)
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
			return m.menuSound(SoundMenuMove)
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
			return m.menuSound(SoundMenuMove)
		}
	case "enter":
		switch m.configIndex {
		case 0:
			m.config.Sound = !m.config.Sound
			m.sound.SetEnabled(m.config.Sound)
		case 1:
			m.config.Music = !m.config.Music
		case 2:
			m.adjustVolume(5)
		case 3:
			m.config.Ghost = !m.config.Ghost
		}
		m.saveConfig()
		return m.menuSound(SoundMenuSelect)
	case "left", "h":
		if m.configIndex == 2 {
			m.adjustVolume(-5)
			return m.menuSound(SoundMenuMove)
		}
	case "right", "l":
		if m.configIndex == 2 {
			m.adjustVolume(5)
			return m.menuSound(SoundMenuMove)
		}
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) adjustVolume(delta int) {
	volume := config.ClampVolume(m.config.Volume + delta)
	if volume == m.config.Volume {
		return
	}
	m.config.Volume = volume
	m.sound.SetVolume(volumeFromPercent(volume))
	m.music.SetVolume(volumeFromPercent(volume))
	m.saveConfig()
}

func (m *Model) saveConfig() {
	if m.configPath == "" {
		return
	}
	if err := config.Save(m.configPath, m.config); err != nil {
		debugLog().Warn("config save failed", "path", m.configPath, "err", err)
	}
}
