// Package mazeapi provides structures and utilities for managing maze
// session requests and responses.
package mazeapi

// NewMazeRequest asks for a maze of the given dimensions.
type NewMazeRequest struct {
	Rows int `json:"rows" binding:"required,min=1"`
	Cols int `json:"cols" binding:"required,min=1"`
}

// NewMazeResponse carries the created session's ID.
type NewMazeResponse struct {
	ID string `json:"id"`
}

// PointRequest designates a cell. Pointers keep row/col 0 distinguishable
// from a missing field.
type PointRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// PointResponse is a cell coordinate.
type PointResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellResponse is the render-ready wall state of one cell.
type CellResponse struct {
	NorthWall bool `json:"north_wall"`
	SouthWall bool `json:"south_wall"`
	EastWall  bool `json:"east_wall"`
	WestWall  bool `json:"west_wall"`
	Visited   bool `json:"visited"`
}

// MazeResponse is the full session state for rendering.
type MazeResponse struct {
	ID    string           `json:"id"`
	Rows  int              `json:"rows"`
	Cols  int              `json:"cols"`
	Start *PointResponse   `json:"start,omitempty"`
	End   *PointResponse   `json:"end,omitempty"`
	Cells [][]CellResponse `json:"cells"`
}

// OpenWallRequest removes the wall between two adjacent cells.
type OpenWallRequest struct {
	From PointRequest `json:"from" binding:"required"`
	To   PointRequest `json:"to" binding:"required"`
}

// SolveRequest selects the search algorithm to run.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
}

// SolveResponse reports the outcome of a solve. A missing path comes back
// with found=false, not an error status.
type SolveResponse struct {
	Found     bool            `json:"found"`
	Cancelled bool            `json:"cancelled"`
	Length    int             `json:"length"`
	Visited   int             `json:"visited"`
	ElapsedMs float64         `json:"elapsed_ms"`
	Path      []PointResponse `json:"path,omitempty"`
}

// ScoreResponse is one algorithm's best solve time for a grid size.
type ScoreResponse struct {
	Algorithm string  `json:"algorithm"`
	BestMs    float64 `json:"best_ms"`
}

// ScoreboardResponse lists best solve times for a grid size.
type ScoreboardResponse struct {
	Size   string          `json:"size"`
	Scores []ScoreResponse `json:"scores"`
}
