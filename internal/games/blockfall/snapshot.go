package blockfall

import (
	"hash/fnv"

	bf "github.com/vovakirdan/tui-blockfall/internal/games/blockfall/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateTooSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and debugging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick          uint64
	Lines         int
	Pieces        int
	Spawned       int
	GravityTicker int
	State         GameStateType
	Shape         string // Active piece shape, empty if none
	PieceData     []int  // Active piece cells, 2 ints each: Row, Col
	Board         string // Locked cells in the ASCII board format
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.session.IsGameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	cells := g.session.PieceCells()
	pieceData := make([]int, 0, len(cells)*2)
	for _, c := range cells {
		pieceData = append(pieceData, c.Row, c.Col)
	}

	shape := ""
	if sh, ok := g.session.PieceShape(); ok {
		shape = sh.String()
	}

	st := g.session.Stats()
	return Snapshot{
		Tick:          g.ticks,
		Lines:         st.LinesCleared,
		Pieces:        st.PiecesLocked,
		Spawned:       st.PiecesSpawned,
		GravityTicker: g.gravityTicker,
		State:         state,
		Shape:         shape,
		PieceData:     pieceData,
		Board:         bf.RenderASCII(g.session.Grid(), nil),
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	writeInt(snap.Tick)
	writeInt(uint64(snap.Lines))         //#nosec G115 -- hash computation
	writeInt(uint64(snap.Pieces))        //#nosec G115 -- hash computation
	writeInt(uint64(snap.Spawned))       //#nosec G115 -- hash computation
	writeInt(uint64(snap.GravityTicker)) //#nosec G115 -- hash computation
	h.Write([]byte(snap.State))
	h.Write([]byte(snap.Shape))
	for _, v := range snap.PieceData {
		writeInt(uint64(v)) //#nosec G115 -- hash computation
	}
	h.Write([]byte(snap.Board))

	return h.Sum64()
}
