package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

// Maze defines the methods that a maze must implement. It extends the
// engine's view with the mutation and inspection surface the service
// and API layers rely on.
type Maze interface {
	solver.Maze

	Rows() int
	Cols() int
	SetStart(row, col int) error
	SetEnd(row, col int) error
	OpenWall(from, to maze.CellPosition) error
	String() string
}

// MazeSessionManager manages maze sessions: one active maze per session,
// generated, queried, and solved through it.
type MazeSessionManager interface {
	// NewSession generates a maze of the given dimensions and returns
	// the session ID.
	NewSession(rows, cols int) (uuid.UUID, error)

	// Regenerate replaces the session's maze wholesale with a fresh one
	// of the given dimensions, discarding start/end designations.
	Regenerate(id uuid.UUID, rows, cols int) error

	// Maze returns the session's current maze for inspection.
	Maze(id uuid.UUID) (Maze, error)

	SetStart(id uuid.UUID, row, col int) error
	SetEnd(id uuid.UUID, row, col int) error

	// OpenWall removes the wall between two adjacent cells, letting
	// callers shape mazes by means other than generation.
	OpenWall(id uuid.UUID, from, to maze.CellPosition) error

	// Solve runs the chosen algorithm on the session's maze. At most one
	// solve per session runs at a time; concurrent requests are rejected.
	Solve(ctx context.Context, id uuid.UUID, algo solver.Algorithm) (*solver.Result, time.Duration, error)

	// ClearPath resets search state so the session can be solved again.
	ClearPath(id uuid.UUID) error

	// TopScores returns the best recorded solve times for a grid size,
	// fastest first.
	TopScores(ctx context.Context, rows, cols int, n int64) ([]ScoreEntry, error)

	// EndSession discards the session and its maze.
	EndSession(id uuid.UUID)
}
