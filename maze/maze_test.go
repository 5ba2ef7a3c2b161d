package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// removedWallCount counts carved passages, each counted once via the
// east/south walls.
func removedWallCount(m *BacktrackerMaze) int {
	count := 0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			cell := m.CellAt(CellPosition{Row: r, Col: c})
			if c < m.Cols()-1 && !cell.EastWall {
				count++
			}
			if r < m.Rows()-1 && !cell.SouthWall {
				count++
			}
		}
	}
	return count
}

// reachableCellCount flood-fills from origin over carved passages.
func reachableCellCount(m *BacktrackerMaze) int {
	seen := map[CellPosition]bool{{Row: 0, Col: 0}: true}
	frontier := []CellPosition{{Row: 0, Col: 0}}
	for len(frontier) > 0 {
		pos := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, nbr := range m.ReachableNeighbors(pos) {
			if !seen[nbr] {
				seen[nbr] = true
				frontier = append(frontier, nbr)
			}
		}
	}
	return len(seen)
}

func TestNew(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
			_, err := New(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("1x1 grid is a trivial maze", func(t *testing.T) {
		m, err := New(1, 1)
		assert.NoError(t, err)
		cell := m.CellAt(CellPosition{Row: 0, Col: 0})
		assert.True(t, cell.NorthWall)
		assert.True(t, cell.SouthWall)
		assert.True(t, cell.EastWall)
		assert.True(t, cell.WestWall)
	})

	t.Run("reports dimensions", func(t *testing.T) {
		m, err := New(4, 7)
		assert.NoError(t, err)
		assert.Equal(t, 4, m.Rows())
		assert.Equal(t, 7, m.Cols())
	})
}

func TestGeneration(t *testing.T) {
	t.Run("carves a spanning tree", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 1}, {1, 8}, {8, 1}, {5, 5}, {9, 13}} {
			m, err := NewSeeded(dims[0], dims[1], 1)
			assert.NoError(t, err)

			cells := dims[0] * dims[1]
			assert.Equal(t, cells-1, removedWallCount(m), "removed walls for %dx%d", dims[0], dims[1])
			assert.Equal(t, cells, reachableCellCount(m), "reachable cells for %dx%d", dims[0], dims[1])
		}
	})

	t.Run("wall removal is mutual", func(t *testing.T) {
		m, err := NewSeeded(6, 6, 2)
		assert.NoError(t, err)

		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Cols(); c++ {
				cell := m.CellAt(CellPosition{Row: r, Col: c})
				if c < m.Cols()-1 {
					east := m.CellAt(CellPosition{Row: r, Col: c + 1})
					assert.Equal(t, cell.EastWall, east.WestWall)
				}
				if r < m.Rows()-1 {
					south := m.CellAt(CellPosition{Row: r + 1, Col: c})
					assert.Equal(t, cell.SouthWall, south.NorthWall)
				}
			}
		}
	})

	t.Run("generation does not leak search state", func(t *testing.T) {
		m, err := NewSeeded(5, 5, 3)
		assert.NoError(t, err)

		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Cols(); c++ {
				cell := m.CellAt(CellPosition{Row: r, Col: c})
				assert.False(t, cell.Visited)
				assert.Equal(t, InfDistance, cell.Distance)
				assert.Nil(t, cell.Parent)
			}
		}
	})

	t.Run("fixed seed reproduces the wall layout", func(t *testing.T) {
		first, err := NewSeeded(5, 5, 42)
		assert.NoError(t, err)
		second, err := NewSeeded(5, 5, 42)
		assert.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	})
}

func TestStartEnd(t *testing.T) {
	m, err := NewSeeded(4, 4, 1)
	assert.NoError(t, err)

	t.Run("unset by default", func(t *testing.T) {
		assert.Nil(t, m.StartPos())
		assert.Nil(t, m.EndPos())
	})

	t.Run("rejects out-of-bounds positions", func(t *testing.T) {
		assert.ErrorIs(t, m.SetStart(-1, 0), ErrOutOfBounds)
		assert.ErrorIs(t, m.SetStart(0, 4), ErrOutOfBounds)
		assert.ErrorIs(t, m.SetEnd(4, 0), ErrOutOfBounds)
	})

	t.Run("repeated calls replace the prior designation", func(t *testing.T) {
		assert.NoError(t, m.SetStart(0, 0))
		assert.NoError(t, m.SetStart(2, 3))
		assert.Equal(t, &CellPosition{Row: 2, Col: 3}, m.StartPos())

		assert.NoError(t, m.SetEnd(3, 3))
		assert.NoError(t, m.SetEnd(1, 1))
		assert.Equal(t, &CellPosition{Row: 1, Col: 1}, m.EndPos())
	})
}

func TestOpenWall(t *testing.T) {
	t.Run("removes the shared wall on both cells", func(t *testing.T) {
		m, err := NewEmpty(3, 3)
		assert.NoError(t, err)

		from := CellPosition{Row: 1, Col: 1}
		to := CellPosition{Row: 1, Col: 2}
		assert.NoError(t, m.OpenWall(from, to))
		assert.False(t, m.CellAt(from).EastWall)
		assert.False(t, m.CellAt(to).WestWall)
	})

	t.Run("rejects non-adjacent cells", func(t *testing.T) {
		m, err := NewEmpty(3, 3)
		assert.NoError(t, err)

		err = m.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 2})
		assert.ErrorIs(t, err, ErrNotAdjacent)

		err = m.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 1})
		assert.ErrorIs(t, err, ErrNotAdjacent)
	})

	t.Run("rejects out-of-bounds cells", func(t *testing.T) {
		m, err := NewEmpty(3, 3)
		assert.NoError(t, err)

		err = m.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: -1})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestClearSearchState(t *testing.T) {
	m, err := NewSeeded(3, 3, 5)
	assert.NoError(t, err)

	pos := CellPosition{Row: 1, Col: 1}
	cell := m.CellAt(pos)
	cell.Visited = true
	cell.Distance = 4
	cell.Parent = &CellPosition{Row: 1, Col: 0}

	walls := m.String()
	m.ClearSearchState()

	assert.False(t, cell.Visited)
	assert.Equal(t, InfDistance, cell.Distance)
	assert.Nil(t, cell.Parent)
	assert.Equal(t, walls, m.String(), "walls must be untouched")
}

func TestClone(t *testing.T) {
	m, err := NewSeeded(4, 4, 7)
	assert.NoError(t, err)
	assert.NoError(t, m.SetStart(0, 0))
	assert.NoError(t, m.SetEnd(3, 3))

	clone := m.Clone()
	assert.Equal(t, m.String(), clone.String())
	assert.Equal(t, m.StartPos(), clone.StartPos())
	assert.Equal(t, m.EndPos(), clone.EndPos())

	// Mutating the original must not bleed into the copy.
	m.CellAt(CellPosition{Row: 1, Col: 1}).Visited = true
	assert.NoError(t, m.SetStart(2, 2))
	assert.False(t, clone.CellAt(CellPosition{Row: 1, Col: 1}).Visited)
	assert.Equal(t, &CellPosition{Row: 0, Col: 0}, clone.StartPos())
}

func TestReachableNeighbors(t *testing.T) {
	t.Run("empty maze has no reachable neighbors", func(t *testing.T) {
		m, err := NewEmpty(3, 3)
		assert.NoError(t, err)
		assert.Empty(t, m.ReachableNeighbors(CellPosition{Row: 1, Col: 1}))
	})

	t.Run("omits out-of-bounds neighbors", func(t *testing.T) {
		m, err := NewEmpty(1, 2)
		assert.NoError(t, err)
		assert.NoError(t, m.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1}))

		nbrs := m.ReachableNeighbors(CellPosition{Row: 0, Col: 0})
		assert.Equal(t, []CellPosition{{Row: 0, Col: 1}}, nbrs)
	})
}
