package solver

import (
	"context"
	"testing"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/stretchr/testify/assert"
)

// openGrid builds a maze with every internal wall removed.
func openGrid(t *testing.T, rows, cols int) *maze.BacktrackerMaze {
	t.Helper()
	m, err := maze.NewEmpty(rows, cols)
	assert.NoError(t, err)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c < cols-1 {
				assert.NoError(t, m.OpenWall(maze.CellPosition{Row: r, Col: c}, maze.CellPosition{Row: r, Col: c + 1}))
			}
			if r < rows-1 {
				assert.NoError(t, m.OpenWall(maze.CellPosition{Row: r, Col: c}, maze.CellPosition{Row: r + 1, Col: c}))
			}
		}
	}
	return m
}

// assertValidPath checks the path starts and ends where expected and only
// steps between reachable neighbors.
func assertValidPath(t *testing.T, m Maze, path []maze.CellPosition, start, end maze.CellPosition) {
	t.Helper()
	assert.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])

	for idx := 1; idx < len(path); idx++ {
		assert.Contains(t, m.ReachableNeighbors(path[idx-1]), path[idx],
			"step %d: %v -> %v crosses a wall", idx, path[idx-1], path[idx])
	}
}

func TestParseAlgorithm(t *testing.T) {
	for selector, want := range map[string]Algorithm{
		"A*":       AStar,
		"astar":    AStar,
		"dijkstra": Dijkstra,
		"Dijkstra": Dijkstra,
		"BFS":      BFS,
		"dfs":      DFS,
	} {
		got, err := ParseAlgorithm(selector)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseAlgorithm("bellman-ford")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSolvePreconditions(t *testing.T) {
	t.Run("requires both start and end", func(t *testing.T) {
		m, err := maze.NewSeeded(4, 4, 1)
		assert.NoError(t, err)

		_, err = Solve(context.Background(), m, BFS, nil)
		assert.ErrorIs(t, err, ErrPreconditionNotMet)

		assert.NoError(t, m.SetStart(0, 0))
		_, err = Solve(context.Background(), m, BFS, nil)
		assert.ErrorIs(t, err, ErrPreconditionNotMet)
	})

	t.Run("rejects unknown algorithms", func(t *testing.T) {
		m, err := maze.NewSeeded(4, 4, 1)
		assert.NoError(t, err)
		assert.NoError(t, m.SetStart(0, 0))
		assert.NoError(t, m.SetEnd(3, 3))

		_, err = Solve(context.Background(), m, Algorithm("simulated annealing"), nil)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}

func TestSolveOpenGrid(t *testing.T) {
	// Fully open 3x3 grid from (0,0) to (2,2): Manhattan distance 4,
	// so the optimal path has 5 cells.
	start := maze.CellPosition{Row: 0, Col: 0}
	end := maze.CellPosition{Row: 2, Col: 2}

	for _, algo := range []Algorithm{BFS, Dijkstra, AStar} {
		t.Run(string(algo)+" finds the shortest path", func(t *testing.T) {
			m := openGrid(t, 3, 3)
			assert.NoError(t, m.SetStart(start.Row, start.Col))
			assert.NoError(t, m.SetEnd(end.Row, end.Col))

			res, err := Solve(context.Background(), m, algo, nil)
			assert.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, 5, res.Length())
			assertValidPath(t, m, res.Path, start, end)
		})
	}

	t.Run("DFS finds a valid path of at least optimal length", func(t *testing.T) {
		m := openGrid(t, 3, 3)
		assert.NoError(t, m.SetStart(start.Row, start.Col))
		assert.NoError(t, m.SetEnd(end.Row, end.Col))

		res, err := Solve(context.Background(), m, DFS, nil)
		assert.NoError(t, err)
		assert.True(t, res.Found)
		assert.GreaterOrEqual(t, res.Length(), 5)
		assertValidPath(t, m, res.Path, start, end)
	})
}

func TestSolveGeneratedMaze(t *testing.T) {
	start := maze.CellPosition{Row: 0, Col: 0}
	end := maze.CellPosition{Row: 7, Col: 7}

	m, err := maze.NewSeeded(8, 8, 99)
	assert.NoError(t, err)
	assert.NoError(t, m.SetStart(start.Row, start.Col))
	assert.NoError(t, m.SetEnd(end.Row, end.Col))

	lengths := make(map[Algorithm]int)
	for _, algo := range []Algorithm{BFS, Dijkstra, AStar, DFS} {
		res, err := Solve(context.Background(), m, algo, nil)
		assert.NoError(t, err)
		assert.True(t, res.Found, "%s must find a path in a perfect maze", algo)
		assertValidPath(t, m, res.Path, start, end)
		lengths[algo] = res.Length()
	}

	// All optimal algorithms agree on the shortest length; DFS only
	// guarantees some path.
	assert.Equal(t, lengths[BFS], lengths[Dijkstra])
	assert.Equal(t, lengths[BFS], lengths[AStar])
	assert.GreaterOrEqual(t, lengths[DFS], lengths[BFS])
}

func TestSolveStartEqualsEnd(t *testing.T) {
	for _, algo := range []Algorithm{BFS, Dijkstra, AStar, DFS} {
		m, err := maze.NewSeeded(3, 3, 4)
		assert.NoError(t, err)
		assert.NoError(t, m.SetStart(1, 1))
		assert.NoError(t, m.SetEnd(1, 1))

		res, err := Solve(context.Background(), m, algo, nil)
		assert.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, []maze.CellPosition{{Row: 1, Col: 1}}, res.Path)
	}
}

func TestSolveNoPath(t *testing.T) {
	// No walls carved: distinct cells are mutually unreachable.
	m, err := maze.NewEmpty(2, 2)
	assert.NoError(t, err)
	assert.NoError(t, m.SetStart(0, 0))
	assert.NoError(t, m.SetEnd(1, 1))

	for _, algo := range []Algorithm{BFS, Dijkstra, AStar, DFS} {
		res, err := Solve(context.Background(), m, algo, nil)
		assert.NoError(t, err, "%s: no-path is a result, not an error", algo)
		assert.False(t, res.Found)
		assert.False(t, res.Cancelled)
		assert.Empty(t, res.Path)
	}
}

func TestSolveRerunIsIdempotent(t *testing.T) {
	m, err := maze.NewSeeded(6, 6, 11)
	assert.NoError(t, err)
	assert.NoError(t, m.SetStart(0, 0))
	assert.NoError(t, m.SetEnd(5, 5))

	for _, algo := range []Algorithm{BFS, Dijkstra, AStar, DFS} {
		first, err := Solve(context.Background(), m, algo, nil)
		assert.NoError(t, err)

		m.ClearSearchState()
		second, err := Solve(context.Background(), m, algo, nil)
		assert.NoError(t, err)
		assert.Equal(t, first.Path, second.Path, "%s must reproduce its path on an unchanged maze", algo)
	}
}

func TestSolveCancellation(t *testing.T) {
	m, err := maze.NewSeeded(10, 10, 8)
	assert.NoError(t, err)
	assert.NoError(t, m.SetStart(0, 0))
	assert.NoError(t, m.SetEnd(9, 9))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Solve(ctx, m, BFS, nil)
	assert.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.False(t, res.Found)
}

func TestObservationHook(t *testing.T) {
	m, err := maze.NewSeeded(6, 6, 13)
	assert.NoError(t, err)
	assert.NoError(t, m.SetStart(0, 0))
	assert.NoError(t, m.SetEnd(5, 5))

	silent, err := Solve(context.Background(), m, AStar, nil)
	assert.NoError(t, err)

	m.ClearSearchState()
	var observed []maze.CellPosition
	watched, err := Solve(context.Background(), m, AStar, &Options{
		OnVisit: func(pos maze.CellPosition) { observed = append(observed, pos) },
	})
	assert.NoError(t, err)

	// The hook is advisory: same outcome with or without it, one call
	// per finalized cell.
	assert.Equal(t, silent.Path, watched.Path)
	assert.Len(t, observed, watched.Visited)
}
