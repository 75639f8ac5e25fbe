package controller

import (
	"brightminds_backend/internal/service"
	"brightminds_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	ChildService     *service.ChildService
}

func NewDashboardController(dashboardService *service.DashboardService, childService *service.ChildService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService, ChildService: childService}
}

// GetDashboard godoc
// @Summary A child's stats, recent activity and achievements
// @Tags dashboard
// @Produce  json
// @Success 200 {object} util.Response{data=service.ChildDashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	childID, ok := resolveChild(ctx, c.ChildService)
	if !ok {
		return
	}

	dashboard, err := c.DashboardService.GetChildDashboard(childID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// GetLeaderboard godoc
// @Summary Top children by XP
// @Tags dashboard
// @Produce  json
// @Param   limit query int false "max entries"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *DashboardController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.DashboardService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
