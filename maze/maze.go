/*
Package maze provides tools for creating and managing rectangular mazes.

It defines the `BacktrackerMaze` structure, composed of `Cell` objects that
carry wall configurations and transient search state.

Generation uses a randomized iterative depth-first backtracker, which
produces a perfect maze: the passage graph is a spanning tree, so exactly
one simple path connects any two cells. Utility functions enable neighbor
detection, programmatic wall editing, start/end designation, and ASCII
visualization of the maze.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrInvalidDimensions is returned when a maze is requested with
	// non-positive rows or columns.
	ErrInvalidDimensions = errors.New("maze: rows and cols must be positive")

	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")

	// ErrNotAdjacent is returned when a wall operation targets two cells
	// that do not share an edge.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")
)

// BacktrackerMaze represents a rectangular maze consisting of cells with
// walls, plus optional start and end designations for search passes.
type BacktrackerMaze struct {
	rows  int
	cols  int
	grid  [][]*Cell
	start *CellPosition
	end   *CellPosition
	rng   *rand.Rand
}

// New initializes a maze of the given dimensions and carves its passages
// with a time-derived seed.
func New(rows, cols int) (*BacktrackerMaze, error) {
	return NewSeeded(rows, cols, time.Now().UnixNano())
}

// NewSeeded initializes a maze of the given dimensions and carves its
// passages using the provided seed. The same seed always reproduces the
// same wall layout.
func NewSeeded(rows, cols int, seed int64) (*BacktrackerMaze, error) {
	m, err := NewEmpty(rows, cols)
	if err != nil {
		return nil, err
	}

	m.rng = rand.New(rand.NewSource(seed))
	m.generate()
	return m, nil
}

// NewEmpty initializes a maze with every wall intact and no passages
// carved. Callers may shape it themselves with OpenWall; a search on an
// untouched empty maze finds no path between distinct cells.
func NewEmpty(rows, cols int) (*BacktrackerMaze, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	grid := make([][]*Cell, rows)
	for r := range grid {
		grid[r] = make([]*Cell, cols)
		for c := range grid[r] {
			grid[r][c] = newCell()
		}
	}

	return &BacktrackerMaze{
		rows: rows,
		cols: cols,
		grid: grid,
	}, nil
}

// Clone returns a deep copy of the maze: walls, search state, and
// start/end designations. The copy shares nothing with the original, so
// it stays stable while the original is solved or edited.
func (m *BacktrackerMaze) Clone() *BacktrackerMaze {
	grid := make([][]*Cell, m.rows)
	for r := range grid {
		grid[r] = make([]*Cell, m.cols)
		for c := range grid[r] {
			cell := *m.grid[r][c]
			if cell.Parent != nil {
				parent := *cell.Parent
				cell.Parent = &parent
			}
			grid[r][c] = &cell
		}
	}

	return &BacktrackerMaze{
		rows:  m.rows,
		cols:  m.cols,
		grid:  grid,
		start: m.StartPos(),
		end:   m.EndPos(),
	}
}

// Rows returns the number of rows in the maze.
func (m *BacktrackerMaze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze.
func (m *BacktrackerMaze) Cols() int {
	return m.cols
}

// InBound reports whether the given coordinates lie inside the grid.
func (m *BacktrackerMaze) InBound(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// CellAt returns the cell at the given position. The position must be
// in bounds.
func (m *BacktrackerMaze) CellAt(pos CellPosition) *Cell {
	return m.grid[pos.Row][pos.Col]
}

// generate carves passages with a randomized iterative depth-first
// backtracker: descend to a random unvisited neighbor while one exists,
// pop the stack otherwise, stop when the stack empties. Every cell is
// visited exactly once, so the removed walls form a spanning tree.
func (m *BacktrackerMaze) generate() {
	origin := CellPosition{Row: 0, Col: 0}
	m.grid[origin.Row][origin.Col].Visited = true
	stack := []CellPosition{origin}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		moves := m.unvisitedNeighbors(current)

		if len(moves) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		move := moves[m.rng.Intn(len(moves))]
		m.openWall(move)
		m.grid[move.To.Row][move.To.Col].Visited = true
		stack = append(stack, move.To)
	}

	// Visited is repurposed by search passes and must not leak
	// generation state.
	for _, row := range m.grid {
		for _, cell := range row {
			cell.Visited = false
		}
	}
}

// unvisitedNeighbors finds all moves from pos to grid-adjacent cells not
// yet visited by generation. Walls are ignored; out-of-bounds neighbors
// are omitted.
func (m *BacktrackerMaze) unvisitedNeighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range Directions {
		neighbor := CellPosition{Row: pos.Row + dir.Delta.Row, Col: pos.Col + dir.Delta.Col}
		if m.InBound(neighbor.Row, neighbor.Col) && !m.grid[neighbor.Row][neighbor.Col].Visited {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir.Name})
		}
	}
	return result
}

// ReachableNeighbors returns the grid-adjacent positions whose connecting
// wall has been removed. Out-of-bounds neighbors are omitted.
func (m *BacktrackerMaze) ReachableNeighbors(pos CellPosition) []CellPosition {
	cell := m.grid[pos.Row][pos.Col]
	var result []CellPosition
	for _, dir := range Directions {
		if m.hasWall(cell, dir.Name) {
			continue
		}
		neighbor := CellPosition{Row: pos.Row + dir.Delta.Row, Col: pos.Col + dir.Delta.Col}
		if m.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, neighbor)
		}
	}
	return result
}

// hasWall reports whether cell still has its wall in the named direction.
func (m *BacktrackerMaze) hasWall(cell *Cell, direction string) bool {
	switch direction {
	case "North":
		return cell.NorthWall
	case "South":
		return cell.SouthWall
	case "East":
		return cell.EastWall
	case "West":
		return cell.WestWall
	default:
		return true
	}
}

// openWall removes the wall between two adjacent cells in the specified
// direction. Removal is always mutual.
func (m *BacktrackerMaze) openWall(move Move) {
	switch move.Direction {
	case "North":
		m.grid[move.From.Row][move.From.Col].NorthWall = false
		m.grid[move.To.Row][move.To.Col].SouthWall = false
	case "South":
		m.grid[move.From.Row][move.From.Col].SouthWall = false
		m.grid[move.To.Row][move.To.Col].NorthWall = false
	case "East":
		m.grid[move.From.Row][move.From.Col].EastWall = false
		m.grid[move.To.Row][move.To.Col].WestWall = false
	case "West":
		m.grid[move.From.Row][move.From.Col].WestWall = false
		m.grid[move.To.Row][move.To.Col].EastWall = false
	}
}

// OpenWall removes the wall between two adjacent cells, mutually on both.
// It allows callers to shape mazes by means other than generation.
func (m *BacktrackerMaze) OpenWall(from, to CellPosition) error {
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return ErrOutOfBounds
	}

	for _, dir := range Directions {
		if from.Row+dir.Delta.Row == to.Row && from.Col+dir.Delta.Col == to.Col {
			m.openWall(Move{From: from, To: to, Direction: dir.Name})
			return nil
		}
	}
	return ErrNotAdjacent
}

// SetStart designates the search start cell. Repeated calls replace the
// prior designation.
func (m *BacktrackerMaze) SetStart(row, col int) error {
	if !m.InBound(row, col) {
		return ErrOutOfBounds
	}
	m.start = &CellPosition{Row: row, Col: col}
	return nil
}

// SetEnd designates the search end cell. Repeated calls replace the
// prior designation.
func (m *BacktrackerMaze) SetEnd(row, col int) error {
	if !m.InBound(row, col) {
		return ErrOutOfBounds
	}
	m.end = &CellPosition{Row: row, Col: col}
	return nil
}

// StartPos returns the designated start position, or nil if unset.
func (m *BacktrackerMaze) StartPos() *CellPosition {
	if m.start == nil {
		return nil
	}
	pos := *m.start
	return &pos
}

// EndPos returns the designated end position, or nil if unset.
func (m *BacktrackerMaze) EndPos() *CellPosition {
	if m.end == nil {
		return nil
	}
	pos := *m.end
	return &pos
}

// ClearSearchState resets Visited, Distance and Parent on every cell
// without touching walls or dimensions. Callable between successive
// solve attempts.
func (m *BacktrackerMaze) ClearSearchState() {
	for _, row := range m.grid {
		for _, cell := range row {
			cell.resetSearchState()
		}
	}
}

// String provides a textual representation of the maze. Start and end
// cells, when set, are marked S and E.
func (m *BacktrackerMaze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for row := 0; row < m.rows; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.cols; col++ {
			cell := m.grid[row][col]

			switch {
			case m.start != nil && m.start.Row == row && m.start.Col == col:
				cellRow += " S "
			case m.end != nil && m.end.Row == row && m.end.Col == col:
				cellRow += " E "
			default:
				cellRow += "   "
			}

			// Add east wall or space
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.cols; col++ {
			cell := m.grid[row][col]

			// Add south wall or space
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
