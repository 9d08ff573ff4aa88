package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout constants, in terminal cells.
const (
	cellW  = 2  // Each board column is two characters wide
	panelW = 14 // Side panel width
	gutter = 2  // Space between board and panel
	boxH   = 6  // NEXT and HOLD boxes
)

// Visual characters for rendering
const (
	blockChar = '█'
	ghostChar = '░'
	emptyChar = '·'
)

var pieceColors = map[engine.Color]core.Color{
	engine.ColorCyan:   core.ColorCyan,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorOrange: core.ColorOrange,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorRed:    core.ColorRed,
	engine.ColorPurple: core.ColorPurple,
}

func screenColor(c engine.Color) core.Color {
	if sc, ok := pieceColors[c]; ok {
		return sc
	}
	return core.ColorDefault
}

var controls = []string{
	"←→  move",
	"↑   rotate",
	"↓   soft drop",
	"spc hard drop",
	"c   hold",
	"p   pause",
	"r   restart",
	"q   quit",
}

// layout is where each part of the view goes on the current screen.
type layout struct {
	board core.Rect
	next  core.Rect
	hold  core.Rect
	stats core.Rect
}

// MinScreenSize returns the smallest terminal that fits a board of the
// given dimensions.
func MinScreenSize(rows, columns int) (w, h int) {
	w = columns*cellW + 2 + gutter + panelW
	h = max(rows+2, 2*boxH+4) + 1
	return w, h
}

func computeLayout(screenW, screenH, rows, columns int) (layout, bool) {
	needW, needH := MinScreenSize(rows, columns)
	if screenW < needW || screenH < needH {
		return layout{}, false
	}

	x := (screenW - needW) / 2
	y := (screenH-needH)/2 + 1
	board := core.NewRect(x, y, columns*cellW+2, rows+2)
	px := board.Right() + gutter
	return layout{
		board: board,
		next:  core.NewRect(px, y, panelW, boxH),
		hold:  core.NewRect(px, y+boxH, panelW, boxH),
		stats: core.NewRect(px, y+2*boxH, panelW, screenH-(y+2*boxH)),
	}, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	l, ok := computeLayout(dst.Width(), dst.Height(), snap.Rows, snap.Columns)
	if !ok {
		renderTooSmall(dst, snap.Rows, snap.Columns)
		return
	}

	dst.DrawTextCentered(l.board.Y-1, "T E T R I S", core.ColorWhite)
	renderBoard(dst, l.board, snap)
	renderPreview(dst, l.next, "NEXT", snap.Next, core.ColorGray)

	holdColor := core.ColorGray
	if !snap.CanHold {
		holdColor = core.ColorDim
	}
	if snap.HasHeld {
		renderPreview(dst, l.hold, "HOLD", snap.Held, holdColor)
	} else {
		renderPreview(dst, l.hold, "HOLD", engine.Piece{}, holdColor)
	}
	renderStats(dst, l.stats, snap, max(snap.Best, snap.Score))

	switch {
	case snap.GameOver:
		sub := fmt.Sprintf("Score %d", snap.Score)
		if snap.NewBest {
			sub = fmt.Sprintf("New best %d!", snap.Score)
		}
		renderOverlay(dst, l.board, "GAME OVER", sub, "R restart  Q quit")
	case snap.Paused:
		renderOverlay(dst, l.board, "PAUSED", "P to resume", "")
	}
}

func renderTooSmall(dst *core.Screen, rows, columns int) {
	w, h := MinScreenSize(rows, columns)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func renderBoard(dst *core.Screen, r core.Rect, snap engine.Snapshot) {
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)

	cell := func(x, y int, ch rune, c core.Color) {
		sx := inner.X + x*cellW
		for i := range cellW {
			dst.SetColored(sx+i, inner.Y+y, ch, c)
		}
	}

	for y, row := range snap.Board {
		for x, c := range row {
			if c == engine.ColorNone {
				dst.SetColored(inner.X+x*cellW+1, inner.Y+y, emptyChar, core.ColorDim)
				continue
			}
			cell(x, y, blockChar, screenColor(c))
		}
	}

	if snap.GameOver {
		return
	}
	for _, p := range snap.Shadow.Cells() {
		cell(p.X, p.Y, ghostChar, screenColor(snap.Shadow.Color))
	}
	for _, p := range snap.Current.Cells() {
		cell(p.X, p.Y, blockChar, screenColor(snap.Current.Color))
	}
}

// renderPreview draws a boxed piece centered in r. A piece with no shape
// leaves the box empty.
func renderPreview(dst *core.Screen, r core.Rect, label string, p engine.Piece, border core.Color) {
	dst.DrawBox(r, border)
	dst.DrawTextColored(r.X+2, r.Y, " "+label+" ", core.ColorWhite)
	if p.Shape == nil {
		return
	}

	inner := r.Inset(1)
	ox := inner.X + (inner.W-p.Shape.Width()*cellW)/2
	oy := inner.Y + (inner.H-p.Shape.Height())/2
	color := screenColor(p.Color)
	if border == core.ColorDim {
		color = core.ColorDim
	}
	for y, row := range p.Shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			for i := range cellW {
				dst.SetColored(ox+x*cellW+i, oy+y, blockChar, color)
			}
		}
	}
}

func renderStats(dst *core.Screen, r core.Rect, snap engine.Snapshot, best int) {
	lines := []struct {
		label string
		value int
	}{
		{"Score", snap.Score},
		{"Best", best},
		{"Level", snap.Level},
		{"Lines", snap.Lines},
	}

	y := r.Y
	for _, l := range lines {
		dst.DrawTextColored(r.X+1, y, l.label, core.ColorGray)
		value := fmt.Sprintf("%d", l.value)
		dst.DrawTextColored(r.Right()-len(value), y, value, core.ColorWhite)
		y++
	}

	y++
	for _, c := range controls {
		if y >= r.Bottom() {
			break
		}
		dst.DrawTextColored(r.X+1, y, c, core.ColorDim)
		y++
	}
}

func renderOverlay(dst *core.Screen, board core.Rect, title, subtitle, hint string) {
	w := min(board.W-2, max(len(title), len(subtitle), len(hint))+4)
	box := core.NewRect(board.X+(board.W-w)/2, board.Y+board.H/2-3, w, 6)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	center := func(y int, text string, c core.Color) {
		dst.DrawTextColored(box.X+(box.W-len(text))/2, y, text, c)
	}
	center(box.Y+1, title, core.ColorYellow)
	center(box.Y+2, subtitle, core.ColorWhite)
	if hint != "" {
		center(box.Y+4, hint, core.ColorGray)
	}
}
