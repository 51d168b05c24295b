// Package walkapi exposes the guard walk solver over HTTP.
package walkapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-guard/service/i"
	"github.com/gin-gonic/gin"
)

var (
	ErrNilSolver = errors.New("walk solver must not be nil")
)

// ExampleGrid is the sample grid served by the public example route.
var ExampleGrid = []string{
	"....#.....",
	".........#",
	"..........",
	"..#.......",
	".......#..",
	"..........",
	".#..^.....",
	"........#.",
	"#.........",
	"......#...",
}

// WalkController handles guard walk requests.
type WalkController struct {
	solver i.WalkSolver
}

// NewWalkController initializes a WalkController.
func NewWalkController(s i.WalkSolver) (*WalkController, error) {
	if s == nil {
		return nil, ErrNilSolver
	}
	return &WalkController{solver: s}, nil
}

// RegisterPublic registers public routes.
func (wc *WalkController) RegisterPublic(route *gin.RouterGroup) {
	walks := route.Group("/walks")
	{
		walks.GET("/example", wc.example)
	}
}

// RegisterProtected registers protected routes.
func (wc *WalkController) RegisterProtected(route *gin.RouterGroup) {
	walks := route.Group("/walks")
	{
		walks.POST("/", wc.walk)
	}
}

// walk solves the grid in the request body.
func (wc *WalkController) walk(ctx *gin.Context) {
	var request WalkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := wc.solver.Solve(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, responseFromReport(report))
}

// example solves ExampleGrid.
func (wc *WalkController) example(ctx *gin.Context) {
	report, err := wc.solver.Solve(ExampleGrid)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, responseFromReport(report))
}
