package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

const (
	cellWidth   = 2 // Screen columns per maze cell
	hudHeight   = 2 // HUD line plus separator
	flashTicks  = 120
	flashPeriod = 8
	mouthOpenAt = 15
)

// ScreenSize returns the terminal area needed to draw a maze of the given size.
func ScreenSize(rows, cols int) (width, height int) {
	return cols * cellWidth, rows + hudHeight
}

// Render draws a snapshot onto dst. The maze is centered horizontally
// below a one-line HUD.
func Render(dst *core.Screen, s Snapshot, paused bool) {
	rows := len(s.Cells)
	cols := 0
	if rows > 0 {
		cols = len(s.Cells[0])
	}

	w, h := ScreenSize(rows, cols)
	if dst.Width() < w || dst.Height() < h {
		renderTooSmall(dst, w, h)
		return
	}

	boardX := (dst.Width() - w) / 2
	renderHUD(dst, s)
	renderMaze(dst, s, boardX)
	renderAdversaries(dst, s, boardX)
	renderAgent(dst, s, boardX)
	renderOverlays(dst, s, paused)
}

func renderTooSmall(dst *core.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
}

func renderError(dst *core.Screen, err error) {
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "Configuration error", core.ColorRed)
	msg := err.Error()
	if limit := dst.Width() - 2; limit > 3 && len(msg) > limit {
		msg = msg[:limit-3] + "..."
	}
	dst.DrawTextCentered(y+1, msg, core.ColorDefault)
	dst.DrawTextCentered(y+3, "Press Q to quit", core.ColorGray)
}

// renderHUD draws score and power countdown on the left and pellet
// progress on the right.
func renderHUD(dst *core.Screen, s Snapshot) {
	r := s.Round
	left := fmt.Sprintf("Score: %d", r.Score)
	dst.DrawTextColor(0, 0, left, core.ColorYellow)

	if r.PowerMode {
		dst.DrawTextColor(len(left)+2, 0, fmt.Sprintf("POWER %d", r.PowerTicks), core.ColorBrightBlue)
	}

	pellets := fmt.Sprintf("Pellets %d/%d", r.Collected, r.Total)
	dst.DrawText(dst.Width()-len(pellets), 0, pellets)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func renderMaze(dst *core.Screen, s Snapshot, boardX int) {
	for row, line := range s.Cells {
		y := row + hudHeight
		for col, cell := range line {
			x := boardX + col*cellWidth
			switch cell {
			case CellWall:
				dst.SetColor(x, y, '█', core.ColorBlue)
				dst.SetColor(x+1, y, '█', core.ColorBlue)
			case CellPellet:
				dst.SetColor(x, y, '·', core.ColorWhite)
			case CellPowerPellet:
				dst.SetColor(x, y, '●', core.ColorWhite)
			}
		}
	}
}

func renderAdversaries(dst *core.Screen, s Snapshot, boardX int) {
	flashing := s.Round.PowerTicks > 0 && s.Round.PowerTicks <= flashTicks &&
		(s.Round.PowerTicks/flashPeriod)%2 == 0

	for _, a := range s.Adversaries {
		glyph, color := 'M', a.Color
		switch a.State {
		case GhostVulnerable:
			glyph, color = 'W', core.ColorBrightBlue
			if flashing {
				color = core.ColorWhite
			}
		case GhostCaptured:
			glyph, color = '"', core.ColorWhite
		}
		drawEntity(dst, boardX, a.Row, a.Col, glyph, color, false)
	}
}

func renderAgent(dst *core.Screen, s Snapshot, boardX int) {
	drawEntity(dst, boardX, s.Agent.Row, s.Agent.Col, agentGlyph(s.Agent), core.ColorYellow, s.Agent.Scale > 1)
}

// agentGlyph picks a mouth that opens toward the direction of travel.
func agentGlyph(a AgentView) rune {
	if a.Scale > 1 {
		return '@'
	}
	if a.MouthAngle < mouthOpenAt {
		return 'O'
	}
	switch a.Dir {
	case DirLeft:
		return '>'
	case DirUp:
		return 'v'
	case DirDown:
		return '^'
	default:
		return '<'
	}
}

func drawEntity(dst *core.Screen, boardX, row, col int, glyph rune, c core.Color, wide bool) {
	if row < 0 || col < 0 {
		return
	}
	x := boardX + col*cellWidth
	y := row + hudHeight
	dst.SetColor(x, y, glyph, c)
	if wide {
		dst.SetColor(x+1, y, glyph, c)
	}
}

func renderOverlays(dst *core.Screen, s Snapshot, paused bool) {
	switch {
	case s.Round.Status == StatusWon:
		drawOverlay(dst, core.ColorGreen, "YOU WIN!", fmt.Sprintf("Score: %d", s.Round.Score), "Press R to restart")
	case s.Round.Status == StatusLost:
		drawOverlay(dst, core.ColorRed, "GAME OVER!", fmt.Sprintf("Score: %d", s.Round.Score), "Press R to restart")
	case paused:
		drawOverlay(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed, centered message over the maze.
func drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	box := core.NewRect((dst.Width()-maxLen)/2-2, (dst.Height()-len(lines))/2-1, maxLen+4, len(lines)+2)
	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, c)

	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box.Y+1+i, line, color)
	}
}

// String renders a snapshot as plain text without a HUD, for logs and tests.
func (s Snapshot) String() string {
	var b strings.Builder
	for row, line := range s.Cells {
		for col, cell := range line {
			ch := cellRune(cell)
			if s.Agent.Row == row && s.Agent.Col == col {
				ch = 'P'
			}
			for _, a := range s.Adversaries {
				if a.Row == row && a.Col == col {
					ch = 'G'
				}
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
