// Package core provides the board and piece state machine for Blockfall.
// This package is UI-agnostic and deterministic for a given RNG.
package core

// Direction is a translation applied to the active piece.
type Direction uint8

const (
	DirDown Direction = iota
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dr, dc) unit offset for one step in this direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// MoveResult is the outcome of a translation or rotation attempt.
// Blocked moves are ordinary results, not errors.
type MoveResult uint8

const (
	// Moved means the piece now occupies the destination cells.
	Moved MoveResult = iota
	// BlockedLocked means a downward move was blocked and the piece locked.
	BlockedLocked
	// BlockedNoop means the move was illegal and nothing changed.
	BlockedNoop
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "Moved"
	case BlockedLocked:
		return "BlockedLocked"
	case BlockedNoop:
		return "BlockedNoop"
	default:
		return "Unknown"
	}
}

// SpawnOutcome reports what happened to the piece slot after an intent.
type SpawnOutcome uint8

const (
	// SpawnNone means no spawn was attempted (the piece did not lock).
	SpawnNone SpawnOutcome = iota
	// Spawned means a new active piece was placed at the spawn anchor.
	Spawned
	// BoardFull means the spawn anchor was blocked; the game is over.
	BoardFull
)

// String returns the string representation of a spawn outcome.
func (s SpawnOutcome) String() string {
	switch s {
	case SpawnNone:
		return "None"
	case Spawned:
		return "Spawned"
	case BoardFull:
		return "BoardFull"
	default:
		return "Unknown"
	}
}

// Cell is a single grid cell. Color is meaningful only when Occupied.
type Cell struct {
	Occupied bool
	Color    Color
}

// Empty returns an unoccupied cell.
func Empty() Cell {
	return Cell{}
}

// LockedCell returns an occupied cell with the given color.
func LockedCell(c Color) Cell {
	return Cell{Occupied: true, Color: c}
}
