package controller

import (
	"brightminds_backend/internal/service"
	"brightminds_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
	ChildService       *service.ChildService
}

func NewAchievementController(achievementService *service.AchievementService, childService *service.ChildService) *AchievementController {
	return &AchievementController{AchievementService: achievementService, ChildService: childService}
}

// ListAchievements godoc
// @Summary All active achievements
// @Tags achievements
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/achievements [get]
func (c *AchievementController) ListAchievements(ctx *gin.Context) {
	all, err := c.AchievementService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, all)
}

// ChildAchievements godoc
// @Summary Achievements with the child's unlocked set
// @Tags achievements
// @Produce  json
// @Success 200 {object} util.Response{data=service.AchievementProgress}
// @Router /api/achievements/mine [get]
func (c *AchievementController) ChildAchievements(ctx *gin.Context) {
	childID, ok := resolveChild(ctx, c.ChildService)
	if !ok {
		return
	}

	progress, err := c.AchievementService.ForChild(childID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
