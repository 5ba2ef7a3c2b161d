/*
Package solver implements the graph-search engine that finds paths
through a carved maze.

Four interchangeable algorithms (A*, Dijkstra, BFS, DFS) share one
engine: a frontier of discovered-but-not-finalized cells, a relaxation
rule that only accepts strict improvements, and parent-link path
reconstruction. The algorithm kind selects the frontier structure and
the priority function; everything else is common, so lazy deletion and
the relaxation rule hold uniformly.
*/
package solver

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// Algorithm selects one of the supported search strategies.
type Algorithm string

// Supported algorithms.
const (
	AStar    Algorithm = "A*"
	Dijkstra Algorithm = "Dijkstra"
	BFS      Algorithm = "BFS"
	DFS      Algorithm = "DFS"
)

var (
	// ErrPreconditionNotMet is returned when Solve is requested without
	// both start and end set. Distinct from a no-path outcome, which is
	// a normal result.
	ErrPreconditionNotMet = errors.New("solver: start and end must both be set")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm selector.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
)

// ParseAlgorithm maps a selector string to an Algorithm. Matching is
// case-insensitive and accepts "astar" for A*.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "a*", "astar":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return "", ErrUnknownAlgorithm
	}
}

// Maze defines what the engine needs from a maze: wall-respecting
// adjacency, cell access, start/end designations, and search-state reset.
type Maze interface {
	CellAt(maze.CellPosition) *maze.Cell
	ReachableNeighbors(maze.CellPosition) []maze.CellPosition
	StartPos() *maze.CellPosition
	EndPos() *maze.CellPosition
	ClearSearchState()
}

// Options configures a Solve call.
type Options struct {
	// OnVisit is called once per finalized cell, in visit order. It is
	// advisory only: used for progressive rendering by callers, it must
	// not affect correctness and may be nil.
	OnVisit func(maze.CellPosition)
}

// Result holds the outcome of a search. A missing path is reported here,
// not as an error.
type Result struct {
	Path      []maze.CellPosition // ordered start..end, nil when not found
	Found     bool                // whether a path was found
	Cancelled bool                // whether the search stopped on context cancellation
	Visited   int                 // number of cells finalized during the search
}

// Length returns the number of cells on the found path.
func (r *Result) Length() int {
	return len(r.Path)
}

// strategy carries the per-algorithm pieces of the shared engine.
type strategy struct {
	frontier frontier
	// weighted strategies relax distances and tolerate stale frontier
	// entries via lazy deletion; unweighted ones finalize on discovery.
	weighted bool
	// priority estimates remaining cost on top of the accumulated
	// distance. Zero for Dijkstra, Manhattan distance to end for A*.
	estimate func(maze.CellPosition) int
}

func strategyFor(algo Algorithm, end maze.CellPosition) (*strategy, error) {
	switch algo {
	case BFS:
		return &strategy{frontier: &fifoFrontier{}}, nil
	case DFS:
		return &strategy{frontier: &lifoFrontier{}}, nil
	case Dijkstra:
		return &strategy{
			frontier: newHeapFrontier(),
			weighted: true,
			estimate: func(maze.CellPosition) int { return 0 },
		}, nil
	case AStar:
		return &strategy{
			frontier: newHeapFrontier(),
			weighted: true,
			estimate: func(pos maze.CellPosition) int { return manhattan(pos, end) },
		}, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// Solve searches m from its start to its end with the chosen algorithm.
//
// It returns ErrPreconditionNotMet when either endpoint is unset and
// ErrUnknownAlgorithm for a bad selector. Otherwise it always terminates
// with a Result: a found path, a no-path outcome when the frontier
// exhausts, or a cancelled outcome when ctx is done between expansions.
// Search state on m is cleared before the pass begins.
func Solve(ctx context.Context, m Maze, algo Algorithm, opts *Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var onVisit func(maze.CellPosition)
	if opts != nil {
		onVisit = opts.OnVisit
	}

	start, end := m.StartPos(), m.EndPos()
	if start == nil || end == nil {
		return nil, ErrPreconditionNotMet
	}

	strat, err := strategyFor(algo, *end)
	if err != nil {
		return nil, err
	}

	m.ClearSearchState()
	startCell := m.CellAt(*start)
	startCell.Distance = 0
	strat.frontier.push(*start, strat.startPriority(*start))
	if !strat.weighted {
		startCell.Visited = true
	}

	res := &Result{}
	for !strat.frontier.empty() {
		// Cooperative cancellation between cell expansions.
		select {
		case <-ctx.Done():
			res.Cancelled = true
			return res, nil
		default:
		}

		current := strat.frontier.pop()
		if current == *end {
			res.Path = reconstructPath(m, *end)
			res.Found = true
			return res, nil
		}

		cell := m.CellAt(current)
		if strat.weighted {
			// Lazy deletion: a stale entry for an already finalized
			// cell is skipped, not reprocessed.
			if cell.Visited {
				continue
			}
			cell.Visited = true
		}

		res.Visited++
		if onVisit != nil {
			onVisit(current)
		}

		for _, nbrPos := range m.ReachableNeighbors(current) {
			nbr := m.CellAt(nbrPos)
			if nbr.Visited {
				continue
			}

			if strat.weighted {
				tentative := cell.Distance + 1
				// Strict improvement only: equal-cost alternatives do
				// not override an existing parent.
				if tentative < nbr.Distance {
					nbr.Distance = tentative
					parent := current
					nbr.Parent = &parent
					strat.frontier.push(nbrPos, tentative+strat.estimate(nbrPos))
				}
			} else {
				nbr.Visited = true
				nbr.Distance = cell.Distance + 1
				parent := current
				nbr.Parent = &parent
				strat.frontier.push(nbrPos, 0)
			}
		}
	}

	// Frontier exhausted without reaching the end: a normal outcome.
	return res, nil
}

func (s *strategy) startPriority(start maze.CellPosition) int {
	if s.weighted {
		return s.estimate(start)
	}
	return 0
}

// reconstructPath walks parent links backward from end, then reverses
// to yield start..end order.
func reconstructPath(m Maze, end maze.CellPosition) []maze.CellPosition {
	var path []maze.CellPosition
	for at := &end; at != nil; at = m.CellAt(*at).Parent {
		path = append(path, *at)
	}
	slices.Reverse(path)
	return path
}

// manhattan is the A* heuristic: admissible and consistent on a
// 4-connected uniform-cost grid.
func manhattan(a, b maze.CellPosition) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
