package core

import "math/rand"

// Intent is a discrete input delivered by the game loop.
type Intent uint8

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentRotate
	IntentSoftDrop
	IntentGravityTick
)

// String returns the string representation of an intent.
func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentRotate:
		return "Rotate"
	case IntentSoftDrop:
		return "SoftDrop"
	case IntentGravityTick:
		return "GravityTick"
	default:
		return "Unknown"
	}
}

// Outcome is the result of applying one intent.
type Outcome struct {
	Result  MoveResult
	Spawn   SpawnOutcome // SpawnNone unless the piece locked
	Cleared []int        // Rows cleared by a lock, bottom-most first
}

// Stats are running counters for a session.
type Stats struct {
	LinesCleared  int
	PiecesLocked  int
	PiecesSpawned int
}

// Session owns one game's grid and active piece and is the boundary the
// game loop talks to. It is not safe for concurrent use; the loop that
// owns it is the only caller.
type Session struct {
	grid     *Grid
	piece    *Piece
	spawner  *Spawner
	changes  *ChangeSet
	gameOver bool
	stats    Stats
}

// NewSession starts a session on an empty rows x cols grid and spawns the
// first piece.
func NewSession(rows, cols int, catalog Catalog, rng *rand.Rand) *Session {
	return NewSessionWithGrid(NewGrid(rows, cols), catalog, rng)
}

// NewSessionWithGrid starts a session on an existing grid. If the spawn
// anchor is already blocked the session starts in the game-over state.
func NewSessionWithGrid(g *Grid, catalog Catalog, rng *rand.Rand) *Session {
	s := &Session{
		grid:    g,
		spawner: NewSpawner(catalog, rng),
		changes: NewChangeSet(g.Cols()),
	}
	s.changes.MarkRows(0, g.Rows()-1)
	s.spawn()
	return s
}

// spawn fills the empty piece slot or ends the game.
func (s *Session) spawn() SpawnOutcome {
	p, ok := s.spawner.Spawn(s.grid)
	if !ok {
		s.piece = nil
		s.gameOver = true
		return BoardFull
	}
	s.piece = p
	s.stats.PiecesSpawned++
	s.changes.MarkAll(p.Cells[:])
	return Spawned
}

// ApplyIntent applies one intent to the active piece. Once the game is
// over every intent is a no-op reporting BoardFull.
func (s *Session) ApplyIntent(in Intent) Outcome {
	if s.gameOver || s.piece == nil {
		return Outcome{Result: BlockedNoop, Spawn: BoardFull}
	}

	switch in {
	case IntentMoveLeft:
		return s.move(DirLeft)
	case IntentMoveRight:
		return s.move(DirRight)
	case IntentRotate:
		before := s.piece.Cells
		res := TryRotate(s.grid, s.piece)
		if res == Moved {
			s.changes.MarkAll(before[:])
			s.changes.MarkAll(s.piece.Cells[:])
		}
		return Outcome{Result: res}
	case IntentSoftDrop, IntentGravityTick:
		return s.move(DirDown)
	default:
		return Outcome{Result: BlockedNoop}
	}
}

func (s *Session) move(dir Direction) Outcome {
	before := s.piece.Cells
	res, lock := TryMove(s.grid, s.piece, dir)
	switch res {
	case Moved:
		s.changes.MarkAll(before[:])
		s.changes.MarkAll(s.piece.Cells[:])
		return Outcome{Result: res}
	case BlockedLocked:
		s.changes.MarkAll(lock.Cells[:])
		if len(lock.Cleared) > 0 {
			// Everything from the top down to the lowest cleared row moved.
			s.changes.MarkRows(0, lock.Cleared[0])
		}
		s.stats.PiecesLocked++
		s.stats.LinesCleared += len(lock.Cleared)
		s.piece = nil
		return Outcome{Result: res, Spawn: s.spawn(), Cleared: lock.Cleared}
	default:
		return Outcome{Result: res}
	}
}

// PieceCells returns the active piece cells, or nil if there is no piece.
func (s *Session) PieceCells() []Coord {
	if s.piece == nil {
		return nil
	}
	return s.piece.CellSlice()
}

// PieceColor returns the active piece color.
func (s *Session) PieceColor() (Color, bool) {
	if s.piece == nil {
		return 0, false
	}
	return s.piece.Color, true
}

// PieceShape returns the active piece shape.
func (s *Session) PieceShape() (Shape, bool) {
	if s.piece == nil {
		return 0, false
	}
	return s.piece.Shape, true
}

// ChangedCells returns the cells that changed since the previous call.
func (s *Session) ChangedCells() []Coord {
	return s.changes.Drain()
}

// IsGameOver returns true once a spawn has been blocked.
func (s *Session) IsGameOver() bool {
	return s.gameOver
}

// Grid returns the session's grid. Callers must treat it as read-only.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Stats returns the running counters.
func (s *Session) Stats() Stats {
	return s.stats
}
