package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/auth"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// WriteScope is the token scope needed to generate mazes.
	WriteScope = "mazes:write"

	generateTimeout = 10 * time.Second
	lookupTimeout   = 2 * time.Second
)

// MazeController serves maze generation and lookup.
type MazeController struct {
	mazes            i.MazeService
	defaultAlgorithm string
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, defaultAlgorithm string) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller needs a maze service")
	}
	return &MazeController{mazes: ms, defaultAlgorithm: defaultAlgorithm}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", mc.algorithms)
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/ascii", mc.ascii)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes", auth.RequireScope(WriteScope), mc.generate)
}

func (mc *MazeController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{
		Algorithms: mc.mazes.Algorithms(),
		Default:    mc.defaultAlgorithm,
	})
}

func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()
	record, err := mc.mazes.Generate(timeoutCtx, i.GenerateRequest{
		Algorithm: request.Algorithm,
		Width:     request.Width,
		Height:    request.Height,
		Seed:      request.Seed,
	})
	if err != nil {
		switch {
		case errors.Is(err, maze.ErrInvalidDimensions),
			errors.Is(err, maze.ErrUnknownAlgorithm),
			errors.Is(err, i.ErrDimensionTooLarge):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		}
		return
	}

	mc.respond(ctx, http.StatusCreated, record)
}

func (mc *MazeController) byID(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	mc.respond(ctx, http.StatusOK, record)
}

func (mc *MazeController) ascii(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	m, err := mc.mazes.Render(record)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "stored maze is corrupt"})
		return
	}
	ctx.String(http.StatusOK, m.String())
}

// lookup resolves the :ID parameter, writing the error response itself.
func (mc *MazeController) lookup(ctx *gin.Context) (*dmn.Maze, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	record, err := mc.mazes.ByID(timeoutCtx, ID)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		}
		return nil, false
	}
	return record, true
}

func (mc *MazeController) respond(ctx *gin.Context, status int, record *dmn.Maze) {
	m, err := mc.mazes.Render(record)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "stored maze is corrupt"})
		return
	}
	tiles := maze.Tiles(m)
	startX, startY := tiles.Start()

	ctx.JSON(status, &MazeResponse{
		ID:         record.ID,
		Algorithm:  record.Algorithm,
		Width:      record.Width,
		Height:     record.Height,
		Seed:       record.Seed,
		CreatedAt:  record.CreatedAt,
		TileWidth:  tiles.Width(),
		TileHeight: tiles.Height(),
		Tiles:      tiles.Rows(),
		StartX:     startX,
		StartY:     startY,
	})
}
