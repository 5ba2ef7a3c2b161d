// Package mazeapi exposes maze session management over HTTP: generation,
// start/end placement, solving, and the solve-time scoreboard.
package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const scoreboardTopN = 10

// MazeController manages maze session operations.
type MazeController struct {
	sessionManager i.MazeSessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.MazeSessionManager) (*MazeController, error) {
	if sm == nil {
		return nil, errors.New("session manager is required")
	}
	return &MazeController{
		sessionManager: sm,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/scoreboards/:size", mc.scoreboard)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.PUT("/:ID/start", mc.setStart)
		mazes.PUT("/:ID/end", mc.setEnd)
		mazes.PUT("/:ID/walls/open", mc.openWall)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.POST("/:ID/reset", mc.reset)
		mazes.POST("/:ID/regenerate", mc.regenerate)
		mazes.DELETE("/:ID", mc.remove)
	}
}

// create handles maze session creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request NewMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := mc.sessionManager.NewSession(request.Rows, request.Cols)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewMazeResponse{ID: id.String()})
}

// get retrieves the session's maze for rendering.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	m, err := mc.sessionManager.Maze(id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toMazeResponse(id, m))
}

// setStart designates the search start cell.
func (mc *MazeController) setStart(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request PointRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.sessionManager.SetStart(id, *request.Row, *request.Col); err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// setEnd designates the search end cell.
func (mc *MazeController) setEnd(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request PointRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.sessionManager.SetEnd(id, *request.Row, *request.Col); err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// openWall removes the wall between two adjacent cells so mazes can be
// shaped by means other than generation.
func (mc *MazeController) openWall(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request OpenWallRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from := maze.CellPosition{Row: *request.From.Row, Col: *request.From.Col}
	to := maze.CellPosition{Row: *request.To.Row, Col: *request.To.Col}
	if err := mc.sessionManager.OpenWall(id, from, to); err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// solve runs the selected algorithm on the session's maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo, err := solver.ParseAlgorithm(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, elapsed, err := mc.sessionManager.Solve(ctx.Request.Context(), id, algo)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	response := SolveResponse{
		Found:     res.Found,
		Cancelled: res.Cancelled,
		Length:    res.Length(),
		Visited:   res.Visited,
		ElapsedMs: float64(elapsed.Microseconds()) / 1000.0,
	}
	for _, pos := range res.Path {
		response.Path = append(response.Path, PointResponse{Row: pos.Row, Col: pos.Col})
	}

	ctx.JSON(http.StatusOK, response)
}

// reset clears the search state of the session's maze.
func (mc *MazeController) reset(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessionManager.ClearPath(id); err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// regenerate replaces the session's maze with a freshly generated one.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	var request NewMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.sessionManager.Regenerate(id, request.Rows, request.Cols); err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// remove ends the session.
func (mc *MazeController) remove(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	mc.sessionManager.EndSession(id)
	ctx.Status(http.StatusNoContent)
}

// scoreboard retrieves best solve times for a grid size like "25x25".
func (mc *MazeController) scoreboard(ctx *gin.Context) {
	size := ctx.Params.ByName("size")

	var rows, cols int
	if _, err := fmt.Sscanf(size, "%dx%d", &rows, &cols); err != nil || rows < 1 || cols < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "size must look like 25x25"})
		return
	}

	entries, err := mc.sessionManager.TopScores(ctx.Request.Context(), rows, cols, scoreboardTopN)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error reading scoreboard"})
		return
	}

	response := ScoreboardResponse{Size: size, Scores: make([]ScoreResponse, 0, len(entries))}
	for _, e := range entries {
		response.Scores = append(response.Scores, ScoreResponse{Algorithm: e.Member, BestMs: e.Score})
	}

	ctx.JSON(http.StatusOK, response)
}

// sessionID parses the :ID path parameter, writing the error response on
// failure.
func (mc *MazeController) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service and engine errors to HTTP statuses.
func (mc *MazeController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSolveInProgress), errors.Is(err, solver.ErrPreconditionNotMet):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDimensions), errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, maze.ErrNotAdjacent), errors.Is(err, solver.ErrUnknownAlgorithm):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}

// toMazeResponse flattens the maze into its render-ready DTO.
func toMazeResponse(id uuid.UUID, m i.Maze) MazeResponse {
	response := MazeResponse{
		ID:    id.String(),
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Cells: make([][]CellResponse, m.Rows()),
	}

	if start := m.StartPos(); start != nil {
		response.Start = &PointResponse{Row: start.Row, Col: start.Col}
	}
	if end := m.EndPos(); end != nil {
		response.End = &PointResponse{Row: end.Row, Col: end.Col}
	}

	for r := 0; r < m.Rows(); r++ {
		response.Cells[r] = make([]CellResponse, m.Cols())
		for c := 0; c < m.Cols(); c++ {
			cell := m.CellAt(maze.CellPosition{Row: r, Col: c})
			response.Cells[r][c] = CellResponse{
				NorthWall: cell.NorthWall,
				SouthWall: cell.SouthWall,
				EastWall:  cell.EastWall,
				WestWall:  cell.WestWall,
				Visited:   cell.Visited,
			}
		}
	}

	return response
}
