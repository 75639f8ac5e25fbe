package controller

import (
	"brightminds_backend/internal/middleware"
	"brightminds_backend/internal/service"
	"brightminds_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService  *service.QuizService
	ChildService *service.ChildService
}

func NewQuizController(quizService *service.QuizService, childService *service.ChildService) *QuizController {
	return &QuizController{QuizService: quizService, ChildService: childService}
}

// resolveChild picks the acting child from the token or request and verifies
// the caller may act on it.
func resolveChild(ctx *gin.Context, children *service.ChildService) (uint, bool) {
	childID, ok := middleware.ResolveChildID(ctx)
	if !ok {
		util.BadRequest(ctx, "missing child id")
		return 0, false
	}

	claims := util.GetUserFromContext(ctx)
	if err := children.VerifyAccess(claims, childID); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) || errors.Is(err, util.ErrChildNotFound) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return 0, false
	}
	return childID, true
}

// ListQuizzes godoc
// @Summary List active quizzes
// @Tags quizzes
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary One quiz with its questions and options
// @Description Correct answers are never serialized to clients.
// @Tags quizzes
// @Produce  json
// @Param   id path int true "quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response "quiz not found"
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	quiz, err := c.QuizService.GetQuiz(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "quiz not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, quiz)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers and collect the tiered reward
// @Tags quizzes
// @Accept  json
// @Produce  json
// @Param   body body service.SubmitQuizRequest true "answers"
// @Success 200 {object} util.Response{data=service.SubmitQuizResult}
// @Failure 404 {object} util.Response "quiz not found"
// @Failure 409 {object} util.Response "duplicate submission"
// @Router /api/quizzes/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	childID, ok := resolveChild(ctx, c.ChildService)
	if !ok {
		return
	}

	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(childID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "quiz not found")
		case errors.Is(err, util.ErrDuplicateSubmission):
			util.Conflict(ctx, "attempt already submitted")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
