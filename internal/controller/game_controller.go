package controller

import (
	"brightminds_backend/internal/service"
	"brightminds_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService  *service.GameService
	ChildService *service.ChildService
}

func NewGameController(gameService *service.GameService, childService *service.ChildService) *GameController {
	return &GameController{GameService: gameService, ChildService: childService}
}

// ListGames godoc
// @Summary List active games
// @Tags games
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Game}
// @Router /api/games [get]
func (c *GameController) ListGames(ctx *gin.Context) {
	games, err := c.GameService.ListGames()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, games)
}

// StartGame godoc
// @Summary Open a play session for a game
// @Tags games
// @Produce  json
// @Param   id path int true "game id"
// @Success 201 {object} util.Response{data=model.PlaySession}
// @Failure 404 {object} util.Response "game not found"
// @Router /api/games/{id}/start [post]
func (c *GameController) StartGame(ctx *gin.Context) {
	childID, ok := resolveChild(ctx, c.ChildService)
	if !ok {
		return
	}
	gameID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	session, err := c.GameService.StartGame(childID, gameID)
	if err != nil {
		if errors.Is(err, util.ErrGameNotFound) {
			util.NotFound(ctx, "game not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, session)
}

// EndGame godoc
// @Summary Finish a play session and collect the tiered reward
// @Description A session pays out once; ending it again is rejected.
// @Tags games
// @Accept  json
// @Produce  json
// @Param   body body service.EndGameRequest true "session result"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 404 {object} util.Response "session not found"
// @Failure 409 {object} util.Response "session already completed"
// @Router /api/games/end [post]
func (c *GameController) EndGame(ctx *gin.Context) {
	childID, ok := resolveChild(ctx, c.ChildService)
	if !ok {
		return
	}

	var req service.EndGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.GameService.EndGame(childID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrGameNotFound):
			util.NotFound(ctx, "session not found")
		case errors.Is(err, util.ErrDuplicateSubmission):
			util.Conflict(ctx, "session already completed")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
