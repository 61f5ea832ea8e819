package blockfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-blockfall/internal/core"
	bf "github.com/vovakirdan/tui-blockfall/internal/games/blockfall/core"
)

// Layout constants
const (
	hudHeight = 2  // Title and counters above the board
	cellWidth = 2  // Screen columns per board cell, to keep cells square-ish
	minHUDW   = 24 // Narrowest screen that fits the counters line
)

// Glyphs for board cells, each cellWidth runes wide.
var (
	glyphPiece  = [cellWidth]rune{'[', ']'}
	glyphLocked = [cellWidth]rune{'█', '█'}
	glyphEmpty  = [cellWidth]rune{' ', '·'}
)

// overlay is the message box drawn on top of the board.
type overlay int

const (
	overlayNone overlay = iota
	overlayPaused
	overlayGameOver
	overlayTooSmall
)

// layout holds screen positions computed from the board and screen sizes.
type layout struct {
	board      core.Rect // Board including its frame
	minW, minH int
}

// computeLayout centers the board below the HUD.
func (g *Game) computeLayout() {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Columns
	boardW := cols*cellWidth + 2
	boardH := rows + 2

	g.layout = layout{
		board: core.NewRect((g.runtime.ScreenW-boardW)/2, hudHeight, boardW, boardH),
		minW:  max(boardW, minHUDW),
		minH:  hudHeight + boardH,
	}
	g.tooSmall = g.runtime.ScreenW < g.layout.minW || g.runtime.ScreenH < g.layout.minH
}

// paletteColor maps a piece color to the platform palette.
func paletteColor(c bf.Color) core.Color {
	switch c {
	case bf.ColorBlue:
		return core.ColorBlue
	case bf.ColorTeal:
		return core.ColorCyan
	case bf.ColorPurple:
		return core.ColorMagenta
	case bf.ColorOrange:
		return core.ColorOrange
	case bf.ColorYellow:
		return core.ColorYellow
	case bf.ColorGreen:
		return core.ColorGreen
	case bf.ColorRed:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

func (g *Game) currentOverlay() overlay {
	switch {
	case g.tooSmall:
		return overlayTooSmall
	case g.session.IsGameOver():
		return overlayGameOver
	case g.paused:
		return overlayPaused
	default:
		return overlayNone
	}
}

// Render draws the game into dst. When dst is the screen painted last time
// and nothing forces a full redraw, only the cells the session reports as
// changed are repainted.
func (g *Game) Render(dst *core.Screen) {
	ov := g.currentOverlay()
	if g.needFull || dst != g.painted || ov != g.paintedOverlay ||
		dst.Width() != g.paintedW || dst.Height() != g.paintedH {
		g.drawFull(dst)
		g.session.ChangedCells()
		g.painted = dst
		g.paintedOverlay = ov
		g.paintedW, g.paintedH = dst.Width(), dst.Height()
		g.needFull = false
		return
	}

	changed := g.session.ChangedCells()
	if len(changed) > 0 {
		piece := g.session.PieceCells()
		pieceColor, _ := g.session.PieceColor()
		for _, c := range changed {
			g.drawCell(dst, c, piece, pieceColor)
		}
	}
	g.drawHUD(dst)
}

// drawFull paints everything from scratch. It does not touch render
// bookkeeping, so it can also produce a reference frame.
func (g *Game) drawFull(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.drawHUD(dst)
	dst.DrawBox(g.layout.board, core.ColorGray)

	grid := g.session.Grid()
	piece := g.session.PieceCells()
	pieceColor, _ := g.session.PieceColor()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			g.drawCell(dst, bf.C(row, col), piece, pieceColor)
		}
	}

	g.drawOverlay(dst, g.currentOverlay())
}

// drawCell paints one board cell.
func (g *Game) drawCell(dst *core.Screen, c bf.Coord, piece []bf.Coord, pieceColor bf.Color) {
	x := g.layout.board.X + 1 + c.Col*cellWidth
	y := g.layout.board.Y + 1 + c.Row

	glyph, color := glyphEmpty, core.ColorGray
	if containsCoord(piece, c) {
		glyph, color = glyphPiece, paletteColor(pieceColor)
	} else if cell := g.session.Grid().Cell(c.Row, c.Col); cell.Occupied {
		glyph, color = glyphLocked, paletteColor(cell.Color)
	}

	for i, r := range glyph {
		dst.SetColored(x+i, y, r, color)
	}
}

func containsCoord(cells []bf.Coord, c bf.Coord) bool {
	for _, pc := range cells {
		if pc == c {
			return true
		}
	}
	return false
}

// drawHUD draws the title and the running counters.
func (g *Game) drawHUD(dst *core.Screen) {
	st := g.session.Stats()

	dst.DrawText(0, 0, strings.Repeat(" ", dst.Width()))
	dst.DrawText(0, 1, strings.Repeat(" ", dst.Width()))

	dst.DrawTextCentered(0, "BLOCKFALL")
	dst.DrawTextCentered(1, fmt.Sprintf("Lines: %d  Pieces: %d", st.LinesCleared, st.PiecesLocked))
}

// drawOverlay draws a framed message box centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, ov overlay) {
	var lines []string
	switch ov {
	case overlayPaused:
		lines = []string{"PAUSED", "p to resume"}
	case overlayGameOver:
		st := g.session.Stats()
		lines = []string{"GAME OVER", fmt.Sprintf("Lines: %d", st.LinesCleared), "r restart  q quit"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = g.layout.board.X + (g.layout.board.W-box.W)/2
	box.Y = g.layout.board.Y + (g.layout.board.H-box.H)/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		dst.DrawTextColored(x, box.Y+1+i, l, core.ColorWhite)
	}
}
