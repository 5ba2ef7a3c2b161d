package maze

import "math"

// InfDistance marks a cell not yet reached by a search pass.
const InfDistance = math.MaxInt

// Cell represents a single cell in a maze grid. Walls start present on
// all four sides and are only ever removed. Visited, Distance and Parent
// are transient: generation uses Visited, search passes use all three,
// and ClearSearchState returns them to their initial state.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.

	Visited  bool          // Visited marks the cell as finalized during generation or search.
	Distance int           // Distance is the best-known cost from the search origin, InfDistance until relaxed.
	Parent   *CellPosition // Parent points back to the predecessor position on the best-known path.
}

// newCell returns a cell with all walls present and clean search state.
func newCell() *Cell {
	return &Cell{
		NorthWall: true,
		SouthWall: true,
		EastWall:  true,
		WestWall:  true,
		Distance:  InfDistance,
	}
}

// resetSearchState clears the transient search fields without touching walls.
func (c *Cell) resetSearchState() {
	c.Visited = false
	c.Distance = InfDistance
	c.Parent = nil
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Move represents a movement from one cell to an adjacent one in a
// specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction string       // Direction of the move (North, South, East, West)
}

// Directions lists the four cardinal moves in the fixed scan order
// North, East, South, West. Both generation and search iterate it in
// this order, which keeps wall layouts and tie-breaking reproducible
// for a fixed seed.
var Directions = []struct {
	Name  string
	Delta CellPosition
}{
	{Name: "North", Delta: CellPosition{Row: -1, Col: 0}},
	{Name: "East", Delta: CellPosition{Row: 0, Col: 1}},
	{Name: "South", Delta: CellPosition{Row: 1, Col: 0}},
	{Name: "West", Delta: CellPosition{Row: 0, Col: -1}},
}
