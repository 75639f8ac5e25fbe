package controller

import (
	"brightminds_backend/internal/service"
	"brightminds_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type StoryController struct {
	StoryService *service.StoryService
	ChildService *service.ChildService
}

func NewStoryController(storyService *service.StoryService, childService *service.ChildService) *StoryController {
	return &StoryController{StoryService: storyService, ChildService: childService}
}

// ListStories godoc
// @Summary List active stories
// @Tags stories
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Story}
// @Router /api/stories [get]
func (c *StoryController) ListStories(ctx *gin.Context) {
	stories, err := c.StoryService.ListStories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stories)
}

type completeStoryRequest struct {
	AttemptKey string `json:"attemptKey"`
}

// CompleteStory godoc
// @Summary Mark a story finished and collect its reward
// @Tags stories
// @Accept  json
// @Produce  json
// @Param   id path int true "story id"
// @Param   body body completeStoryRequest false "idempotency key"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 404 {object} util.Response "story not found"
// @Failure 409 {object} util.Response "duplicate submission"
// @Router /api/stories/{id}/complete [post]
func (c *StoryController) CompleteStory(ctx *gin.Context) {
	childID, ok := resolveChild(ctx, c.ChildService)
	if !ok {
		return
	}
	storyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req completeStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.StoryService.CompleteStory(childID, storyID, req.AttemptKey)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStoryNotFound):
			util.NotFound(ctx, "story not found")
		case errors.Is(err, util.ErrDuplicateSubmission):
			util.Conflict(ctx, "story already submitted")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
