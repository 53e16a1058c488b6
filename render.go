package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ByrboxRepo/tetris/internal/config"
	"github.com/ByrboxRepo/tetris/internal/engine"
)

const cellWidth = 2

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	// PieceColors is indexed by engine.Kind-1.
	PieceColors []lipgloss.Color
}

func (t Theme) pieceColor(kind engine.Kind) lipgloss.Color {
	if kind == engine.Empty || len(t.PieceColors) == 0 {
		return ""
	}
	return t.PieceColors[int(kind-1)%len(t.PieceColors)]
}

func classicPalette() []lipgloss.Color {
	colors := make([]lipgloss.Color, 0, len(engine.Kinds()))
	for _, kind := range engine.Kinds() {
		colors = append(colors, lipgloss.Color(kind.Color()))
	}
	return colors
}

var themes = []Theme{
	{
		Name:        config.DefaultTheme,
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		PieceColors: classicPalette(),
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		PieceColors: []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		PieceColors: []lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:        "Forest CRT",
		BorderColor: lipgloss.Color("22"),
		TextColor:   lipgloss.Color("120"),
		AccentColor: lipgloss.Color("34"),
		PieceColors: []lipgloss.Color{"47", "64", "77", "48", "71", "35", "106"},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		PieceColors: []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
	{
		Name:        "Sunset Arcade",
		BorderColor: lipgloss.Color("209"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("214"),
		PieceColors: []lipgloss.Color{"202", "208", "214", "172", "203", "166", "130"},
	},
}

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

func viewMenu(m Model) string {
	theme := themes[m.themeIndex]
	content := renderMenu("TETRIS", menuItems, m.menuIndex, "Enter to select, Q to quit", theme)
	return center(m.width, m.height, content)
}

func viewThemes(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(themes))
	for _, t := range themes {
		items = append(items, t.Name)
	}
	preview := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle(theme).Render("Theme Preview"),
		renderPreviewPieceGrid(theme),
	)
	menu := renderMenu("Themes", items, m.themeIndex, "Enter to apply, Esc to back", theme)
	content := lipgloss.JoinVertical(lipgloss.Left, preview, "", menu)
	return center(m.width, m.height, content)
}

func renderPreviewPieceGrid(theme Theme) string {
	kinds := engine.Kinds()
	rowTop := renderPreviewPieceRow(theme, kinds[:4])
	rowBottom := renderPreviewPieceRow(theme, kinds[4:])
	return lipgloss.JoinVertical(lipgloss.Left, rowTop, rowBottom)
}

func renderPreviewPieceRow(theme Theme, kinds []engine.Kind) string {
	items := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		piece := lipgloss.NewStyle().MarginRight(1).Render(renderMiniPiece(kind, theme))
		items = append(items, piece)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func renderMiniPiece(kind engine.Kind, theme Theme) string {
	cellText := strings.Repeat(" ", cellWidth)
	filled := lipgloss.NewStyle().Background(theme.pieceColor(kind))
	var b strings.Builder
	for _, row := range engine.ShapeOf(kind, 0) {
		for _, on := range row {
			if on {
				b.WriteString(filled.Render(cellText))
			} else {
				b.WriteString(cellText)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func viewConfig(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(configItems))
	for i, item := range configItems {
		switch i {
		case 0:
			items = append(items, fmt.Sprintf("%s: %s", item, onOff(m.config.Sound)))
		case 1:
			state := onOff(m.config.Music)
			if m.config.MusicFile == "" {
				state += " (no music_file set)"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 2:
			items = append(items, fmt.Sprintf("%s: %d%%", item, config.ClampVolume(m.config.Volume)))
		case 3:
			items = append(items, fmt.Sprintf("%s: %s", item, onOff(m.config.Ghost)))
		}
	}
	content := renderMenu("Config", items, m.configIndex, "Enter to toggle, Left/Right to adjust, Esc to back", theme)
	return center(m.width, m.height, content)
}

func onOff(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}

func viewGame(m Model) string {
	theme := themes[m.themeIndex]
	minWidth, minHeight := minGameSize()
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}
	snap := m.game.Snapshot()
	var ghost []engine.Point
	if m.config.Ghost && !snap.GameOver {
		ghost = ghostCells(m.game)
	}
	board := renderBoard(snap, ghost, theme)
	info := renderInfo(m, snap, theme)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	if m.width > 0 && m.width < minWidth+24 {
		content = lipgloss.JoinVertical(lipgloss.Left, board, info)
	}
	return center(m.width, m.height, content)
}

// ghostCells returns where the active piece would land if it kept falling,
// excluding cells it already covers.
func ghostCells(g *engine.Game) []engine.Point {
	piece := g.Piece()
	shape := piece.Shape()
	landing := piece.Y
	for g.IsValid(shape, piece.X, landing+1) {
		landing++
	}
	if landing == piece.Y {
		return nil
	}
	ghost := piece
	ghost.Y = landing
	current := map[engine.Point]struct{}{}
	for _, cell := range piece.Cells() {
		current[cell] = struct{}{}
	}
	cells := make([]engine.Point, 0, 4)
	for _, cell := range ghost.Cells() {
		if _, overlap := current[cell]; !overlap && engine.In(cell) {
			cells = append(cells, cell)
		}
	}
	return cells
}

// renderBoard draws snap.Grid, which already carries the active piece via
// engine.Overlay.
func renderBoard(snap engine.Snapshot, ghost []engine.Point, theme Theme) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cellText := strings.Repeat(" ", cellWidth)
	ghostText := strings.Repeat(".", cellWidth)
	ghostStyle := lipgloss.NewStyle().Foreground(theme.pieceColor(snap.Piece.Kind)).Faint(true)
	ghostMap := make(map[engine.Point]struct{}, len(ghost))
	for _, cell := range ghost {
		ghostMap[cell] = struct{}{}
	}
	edge := border.Render("+" + strings.Repeat("-", engine.Width*cellWidth) + "+")

	var b strings.Builder
	b.WriteString(edge)
	b.WriteString("\n")
	for y := 0; y < engine.Height; y++ {
		b.WriteString(border.Render("|"))
		for x := 0; x < engine.Width; x++ {
			kind := snap.Grid[y][x]
			if kind != engine.Empty {
				style := lipgloss.NewStyle().Background(theme.pieceColor(kind))
				if snap.GameOver {
					style = style.Faint(true)
				}
				b.WriteString(style.Render(cellText))
				continue
			}
			if _, ok := ghostMap[engine.Point{X: x, Y: y}]; ok {
				b.WriteString(ghostStyle.Render(ghostText))
				continue
			}
			b.WriteString(cellText)
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(edge)
	return b.String()
}

func renderInfo(m Model, snap engine.Snapshot, theme Theme) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	b.WriteString(pad.Render(titleStyle(theme).Render("Score")))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("%d", snap.Score)))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", snap.Lines)))
	b.WriteString("\n\n")
	if time.Now().Before(m.bannerUntil) {
		label := "LINE CLEAR"
		if m.bannerLines > 1 {
			label = fmt.Sprintf("%d LINES", m.bannerLines)
		}
		b.WriteString(pad.Render(highlightStyle(theme).Render(label)))
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render(fmt.Sprintf("+%d", m.bannerDelta))))
		b.WriteString("\n\n")
	}
	if snap.GameOver {
		b.WriteString(pad.Render(warningStyle().Render("GAME OVER")))
		b.WriteString("\n")
		b.WriteString(pad.Render(helpStyle(theme).Render("Enter: new game")))
		b.WriteString("\n")
		b.WriteString(pad.Render(helpStyle(theme).Render(keyHelp(m.config.Keys.Quit) + ": menu")))
		b.WriteString("\n")
		return b.String()
	}
	keys := m.config.Keys
	lines := []string{
		keyHelp(keys.Left) + ": left",
		keyHelp(keys.Right) + ": right",
		keyHelp(keys.Down) + ": down",
		keyHelp(keys.Rotate) + ": rotate",
		keyHelp(keys.Pause) + ": pause",
		keyHelp(keys.Quit) + ": menu",
	}
	for _, line := range lines {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	if m.paused {
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("Paused")))
	}
	return b.String()
}

func keyHelp(keys []string) string {
	return strings.Join(keys, "/")
}

func minGameSize() (int, int) {
	width := engine.Width*cellWidth + 4
	height := engine.Height + 4
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func warningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderMenu(title string, items []string, selected int, footer string, theme Theme) string {
	maxWidth := lipgloss.Width(title)
	for _, item := range items {
		if width := lipgloss.Width(item); width > maxWidth {
			maxWidth = width
		}
	}
	if width := lipgloss.Width(footer); width > maxWidth {
		maxWidth = width
	}
	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle(theme).Render(title)))
	b.WriteString("\n\n")
	for i, line := range items {
		if i == selected {
			b.WriteString(lineStyle.Render(highlightStyle(theme).Render(line)))
		} else {
			b.WriteString(lineStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(helpStyle(theme).Render(footer)))
	return b.String()
}
