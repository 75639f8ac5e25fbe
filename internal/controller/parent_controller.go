package controller

import (
	"brightminds_backend/internal/service"
	"brightminds_backend/internal/util"
	"errors"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParentController is the grown-up surface: managing child profiles, minting
// child tokens, goals and the notification inbox.
type ParentController struct {
	ChildService        *service.ChildService
	AuthService         *service.AuthService
	GoalService         *service.GoalService
	NotificationService *service.NotificationService
	DashboardService    *service.DashboardService
}

func NewParentController(
	childService *service.ChildService,
	authService *service.AuthService,
	goalService *service.GoalService,
	notificationService *service.NotificationService,
	dashboardService *service.DashboardService,
) *ParentController {
	return &ParentController{
		ChildService:        childService,
		AuthService:         authService,
		GoalService:         goalService,
		NotificationService: notificationService,
		DashboardService:    dashboardService,
	}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// CreateChild godoc
// @Summary Create a child profile
// @Tags parent
// @Accept  json
// @Produce  json
// @Param   body body service.CreateChildRequest true "child details"
// @Success 201 {object} util.Response{data=model.ChildProfile}
// @Failure 400 {object} util.Response
// @Router /api/parent/children [post]
func (c *ParentController) CreateChild(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.CreateChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	child, err := c.ChildService.CreateChild(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, child)
}

// ListChildren godoc
// @Summary List the parent's child profiles
// @Tags parent
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.ChildProfile}
// @Router /api/parent/children [get]
func (c *ParentController) ListChildren(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	children, err := c.ChildService.ListChildren(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, children)
}

// MintChildToken godoc
// @Summary Issue a token scoped to one child
// @Tags parent
// @Produce  json
// @Param   childId path int true "child id"
// @Success 200 {object} util.Response{data=service.ChildTokenResult}
// @Failure 404 {object} util.Response "child not found"
// @Router /api/parent/children/{childId}/token [post]
func (c *ParentController) MintChildToken(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	childID, ok := pathID(ctx, "childId")
	if !ok {
		return
	}

	result, err := c.AuthService.MintChildToken(claims.UserID, childID)
	if err != nil {
		if errors.Is(err, util.ErrChildNotFound) {
			util.NotFound(ctx, "child not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// UploadAvatar godoc
// @Summary Upload a child's avatar image
// @Tags parent
// @Accept  multipart/form-data
// @Produce  json
// @Param   childId path int true "child id"
// @Param   avatar formData file true "image file"
// @Success 200 {object} util.Response{data=model.ChildProfile}
// @Failure 404 {object} util.Response "child not found"
// @Router /api/parent/children/{childId}/avatar [post]
func (c *ParentController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	childID, ok := pathID(ctx, "childId")
	if !ok {
		return
	}

	header, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "missing avatar file")
		return
	}
	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	child, err := c.ChildService.UpdateAvatar(
		ctx.Request.Context(),
		claims.UserID,
		childID,
		filepath.Ext(header.Filename),
		file,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, util.ErrChildNotFound) {
			util.NotFound(ctx, "child not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, child)
}

// ChildProgress godoc
// @Summary A child's progression summary for the parent view
// @Tags parent
// @Produce  json
// @Param   childId path int true "child id"
// @Success 200 {object} util.Response{data=service.ChildDashboard}
// @Failure 404 {object} util.Response "child not found"
// @Router /api/parent/children/{childId}/progress [get]
func (c *ParentController) ChildProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	childID, ok := pathID(ctx, "childId")
	if !ok {
		return
	}

	if _, err := c.ChildService.GetChild(claims.UserID, childID); err != nil {
		util.NotFound(ctx, "child not found")
		return
	}

	dashboard, err := c.DashboardService.GetChildDashboard(childID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// CreateGoal godoc
// @Summary Set a learning goal for a child
// @Tags parent
// @Accept  json
// @Produce  json
// @Param   body body service.CreateGoalRequest true "goal details"
// @Success 201 {object} util.Response{data=model.LearningGoal}
// @Failure 400 {object} util.Response "invalid target"
// @Failure 404 {object} util.Response "child not found"
// @Router /api/parent/goals [post]
func (c *ParentController) CreateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidTarget):
			util.BadRequest(ctx, "target must be positive")
		case errors.Is(err, util.ErrChildNotFound):
			util.NotFound(ctx, "child not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, goal)
}

// ChildGoals godoc
// @Summary List a child's goals
// @Tags parent
// @Produce  json
// @Param   childId path int true "child id"
// @Success 200 {object} util.Response{data=[]model.LearningGoal}
// @Failure 404 {object} util.Response "child not found"
// @Router /api/parent/children/{childId}/goals [get]
func (c *ParentController) ChildGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	childID, ok := pathID(ctx, "childId")
	if !ok {
		return
	}

	goals, err := c.GoalService.GetChildGoals(claims.UserID, childID)
	if err != nil {
		if errors.Is(err, util.ErrChildNotFound) {
			util.NotFound(ctx, "child not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, goals)
}

// Notifications godoc
// @Summary The parent's notification inbox, newest first
// @Tags parent
// @Produce  json
// @Param   limit query int false "max entries"
// @Success 200 {object} util.Response{data=[]model.Notification}
// @Router /api/parent/notifications [get]
func (c *ParentController) Notifications(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	items, err := c.NotificationService.Inbox(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	unread, err := c.NotificationService.UnreadCount(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"notifications": items, "unread": unread})
}

// MarkNotificationRead godoc
// @Summary Mark one notification as read
// @Tags parent
// @Produce  json
// @Param   id path int true "notification id"
// @Success 200 {object} util.Response
// @Router /api/parent/notifications/{id}/read [post]
func (c *ParentController) MarkNotificationRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.NotificationService.MarkRead(claims.UserID, id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
