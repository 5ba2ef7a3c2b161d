package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

const (
	scoreboardKeyFmt = "scoreboard:%dx%d"
)

var (
	// ErrSessionNotFound is returned for operations on an unknown session.
	ErrSessionNotFound = errors.New("maze session not found")

	// ErrSolveInProgress is returned when a session's maze is being
	// solved and a conflicting request arrives.
	ErrSolveInProgress = errors.New("a solve is already running for this maze")
)

// mazeSession is one active maze. The solving flag makes the session a
// single-writer boundary: while a solve runs, every other mutation on
// the same maze is rejected.
type mazeSession struct {
	maze    i.Maze
	solving bool
}

// MazeSessionManager owns the active mazes, one per session. It
// generates mazes through the injected factory, runs solves, and records
// solve timings on the scoreboard.
type MazeSessionManager struct {
	sessions    map[uuid.UUID]*mazeSession
	mazeFactory func(rows, cols int) (i.Maze, error)
	scoreboard  i.Scoreboard
	logger      i.Logger
	sync.RWMutex
}

// Config holds dependencies for creating a MazeSessionManager.
type Config struct {
	MazeFactory func(rows, cols int) (i.Maze, error)
	Scoreboard  i.Scoreboard
	Logger      i.Logger
}

// NewMazeSessionManager creates a MazeSessionManager from the config.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c.MazeFactory == nil {
		return nil, errors.New("maze factory is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	return &MazeSessionManager{
		sessions:    make(map[uuid.UUID]*mazeSession),
		mazeFactory: c.MazeFactory,
		scoreboard:  c.Scoreboard,
		logger:      c.Logger,
	}, nil
}

// NewSession generates a maze of the given dimensions and returns the
// new session's ID.
func (s *MazeSessionManager) NewSession(rows, cols int) (uuid.UUID, error) {
	m, err := s.mazeFactory(rows, cols)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	s.Lock()
	s.sessions[id] = &mazeSession{maze: m}
	s.Unlock()

	s.logger.Info(fmt.Sprintf("New maze session: id=%s size=%dx%d", id, rows, cols))
	return id, nil
}

// Regenerate replaces the session's maze wholesale, discarding the old
// grid along with its start/end designations.
func (s *MazeSessionManager) Regenerate(id uuid.UUID, rows, cols int) error {
	m, err := s.mazeFactory(rows, cols)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if sess.solving {
		return ErrSolveInProgress
	}

	sess.maze = m
	s.logger.Info(fmt.Sprintf("Regenerated maze: session=%s size=%dx%d", id, rows, cols))
	return nil
}

// cloneable lets the manager hand out private copies instead of the
// live grid a later solve would mutate.
type cloneable interface {
	Clone() *maze.BacktrackerMaze
}

// Maze returns the session's current maze. A running solve mutates the
// grid's search state without further locking, so reads are rejected
// until it finishes, the same as every mutation, and successful reads
// get a snapshot taken under the guard.
func (s *MazeSessionManager) Maze(id uuid.UUID) (i.Maze, error) {
	s.RLock()
	defer s.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.solving {
		return nil, ErrSolveInProgress
	}
	if c, ok := sess.maze.(cloneable); ok {
		return c.Clone(), nil
	}
	return sess.maze, nil
}

// SetStart designates the search start cell on the session's maze.
func (s *MazeSessionManager) SetStart(id uuid.UUID, row, col int) error {
	s.Lock()
	defer s.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if sess.solving {
		return ErrSolveInProgress
	}
	return sess.maze.SetStart(row, col)
}

// SetEnd designates the search end cell on the session's maze.
func (s *MazeSessionManager) SetEnd(id uuid.UUID, row, col int) error {
	s.Lock()
	defer s.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if sess.solving {
		return ErrSolveInProgress
	}
	return sess.maze.SetEnd(row, col)
}

// OpenWall removes the wall between two adjacent cells on the session's
// maze, letting callers shape grids by means other than generation.
func (s *MazeSessionManager) OpenWall(id uuid.UUID, from, to maze.CellPosition) error {
	s.Lock()
	defer s.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if sess.solving {
		return ErrSolveInProgress
	}
	return sess.maze.OpenWall(from, to)
}

// Solve runs the chosen algorithm on the session's maze and reports the
// result together with the elapsed wall time. Only one solve per session
// runs at a time; concurrent requests get ErrSolveInProgress.
func (s *MazeSessionManager) Solve(ctx context.Context, id uuid.UUID, algo solver.Algorithm) (*solver.Result, time.Duration, error) {
	s.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.Unlock()
		return nil, 0, ErrSessionNotFound
	}
	if sess.solving {
		s.Unlock()
		return nil, 0, ErrSolveInProgress
	}
	sess.solving = true
	s.Unlock()

	defer func() {
		s.Lock()
		sess.solving = false
		s.Unlock()
	}()

	started := time.Now()
	res, err := solver.Solve(ctx, sess.maze, algo, nil)
	if err != nil {
		return nil, 0, err
	}
	elapsed := time.Since(started)

	switch {
	case res.Found:
		s.logger.Info(fmt.Sprintf("Path found: session=%s algorithm=%s length=%d visited=%d elapsed=%s", id, algo, res.Length(), res.Visited, elapsed))
		s.recordScore(ctx, sess, algo, elapsed)
	case res.Cancelled:
		s.logger.Warning(fmt.Sprintf("Solve cancelled: session=%s algorithm=%s", id, algo))
	default:
		s.logger.Info(fmt.Sprintf("No path found: session=%s algorithm=%s visited=%d", id, algo, res.Visited))
	}

	return res, elapsed, nil
}

// ClearPath resets the search state on the session's maze so it can be
// solved again.
func (s *MazeSessionManager) ClearPath(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if sess.solving {
		return ErrSolveInProgress
	}
	sess.maze.ClearSearchState()
	return nil
}

// TopScores returns the best recorded solve times for a grid size,
// fastest first.
func (s *MazeSessionManager) TopScores(ctx context.Context, rows, cols int, n int64) ([]i.ScoreEntry, error) {
	if s.scoreboard == nil {
		return nil, nil
	}
	return s.scoreboard.Tops(ctx, ScoreboardKey(rows, cols), n)
}

// EndSession discards the session and its maze.
func (s *MazeSessionManager) EndSession(id uuid.UUID) {
	s.Lock()
	delete(s.sessions, id)
	s.Unlock()
	s.logger.Info(fmt.Sprintf("Ended maze session: id=%s", id))
}

// recordScore stores the solve timing on the scoreboard. Failures are
// logged and never fail the solve.
func (s *MazeSessionManager) recordScore(ctx context.Context, sess *mazeSession, algo solver.Algorithm, elapsed time.Duration) {
	if s.scoreboard == nil {
		return
	}

	key := ScoreboardKey(sess.maze.Rows(), sess.maze.Cols())
	score := float64(elapsed.Microseconds()) / 1000.0
	if err := s.scoreboard.Record(ctx, key, score, string(algo)); err != nil {
		s.logger.Warning(fmt.Sprintf("Recording solve time: %s", err))
	}
}

// ScoreboardKey is the scoreboard key for a grid size.
func ScoreboardKey(rows, cols int) string {
	return fmt.Sprintf(scoreboardKeyFmt, rows, cols)
}
