package app

import (
	"brightminds_backend/docs"
	"brightminds_backend/internal/config"
	"brightminds_backend/internal/middleware"
	"brightminds_backend/internal/model"
	"brightminds_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerActivityRoutes(authGroup, c)
		a.registerParentRoutes(authGroup, c)
	}
}

// registerActivityRoutes is the play surface. Child tokens act on their own
// profile; parents can browse and act for a child via ?childId.
func (a *App) registerActivityRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/games", c.game.ListGames)
	rg.POST("/games/:id/start", c.game.StartGame)
	rg.POST("/games/end", c.game.EndGame)

	rg.GET("/quizzes", c.quiz.ListQuizzes)
	rg.GET("/quizzes/:id", c.quiz.GetQuiz)
	rg.POST("/quizzes/submit", c.quiz.SubmitQuiz)

	rg.GET("/stories", c.story.ListStories)
	rg.POST("/stories/:id/complete", c.story.CompleteStory)

	rg.GET("/achievements", c.achievement.ListAchievements)
	rg.GET("/achievements/mine", c.achievement.ChildAchievements)

	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/leaderboard", c.dashboard.GetLeaderboard)
}

func (a *App) registerParentRoutes(rg *gin.RouterGroup, c *controllers) {
	parent := rg.Group("/parent")
	parent.Use(middleware.RoleMiddleware(model.Parent))
	{
		parent.POST("/children", c.parent.CreateChild)
		parent.GET("/children", c.parent.ListChildren)
		parent.POST("/children/:childId/token", c.parent.MintChildToken)
		parent.POST("/children/:childId/avatar", c.parent.UploadAvatar)
		parent.GET("/children/:childId/progress", c.parent.ChildProgress)
		parent.GET("/children/:childId/goals", c.parent.ChildGoals)

		parent.POST("/goals", c.parent.CreateGoal)

		parent.GET("/notifications", c.parent.Notifications)
		parent.POST("/notifications/:id/read", c.parent.MarkNotificationRead)
	}
}
