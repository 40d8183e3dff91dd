package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hanikakadiya/Master-Quiz/internal/middleware"
)

// Handlers объединяет обработчики приложения
type Handlers struct {
	Quiz   *QuizHandler
	Result *ResultHandler
	Auth   *AuthHandler
	Admin  *AdminHandler
	WS     *WSHandler
}

// Middlewares объединяет middleware, которые зависят от конфигурации
type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	Session     gin.HandlerFunc
	SubmitLimit gin.HandlerFunc
	LoginLimit  gin.HandlerFunc
}

// RegisterRoutes регистрирует все маршруты приложения
func RegisterRoutes(router *gin.Engine, h Handlers, mw Middlewares) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, CategoriesPath)
	})

	// Страницы прохождения: опциональная аутентификация и анонимная сессия
	pages := router.Group("/", mw.Session, mw.Auth.OptionalAuth())
	{
		pages.GET("/categories", h.Quiz.ListCategories)

		quiz := pages.Group("/quiz/:category_id",
			middleware.ExtractUintParamOrRedirect("category_id", ContextCategoryID, CategoriesPath))
		{
			quiz.GET("", h.Quiz.GetQuiz)
			quiz.POST("", h.Quiz.StartQuiz)
		}

		pages.POST("/submit/:category_id",
			mw.SubmitLimit,
			middleware.ExtractUintParamOrRedirect("category_id", ContextCategoryID, CategoriesPath),
			h.Result.Submit)
		pages.GET("/results/:result_id",
			middleware.ExtractUintParamOrRedirect("result_id", ContextResultID, CategoriesPath),
			h.Result.GetResult)
		pages.GET("/leaderboard", h.Result.Leaderboard)
	}

	api := router.Group("/api")
	{
		api.GET("/quiz_data/:category_id", h.Quiz.GetQuizData)
		api.GET("/get_questions/:category_id", mw.Auth.RequireAuth(), mw.Auth.AdminOnly(), h.Quiz.GetQuestions)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", mw.LoginLimit, h.Auth.Register)
			authGroup.POST("/login", mw.LoginLimit, h.Auth.Login)
			authGroup.POST("/logout", h.Auth.Logout)
		}

		api.GET("/users/me", mw.Auth.RequireAuth(), h.Auth.Me)

		admin := api.Group("/admin", mw.Auth.RequireAuth(), mw.Auth.AdminOnly())
		{
			admin.POST("/categories", h.Admin.CreateCategory)
			adminCategory := admin.Group("/categories/:id", middleware.ExtractUintParam("id", ContextAdminCategoryID))
			{
				adminCategory.PUT("", h.Admin.UpdateCategory)
				adminCategory.DELETE("", h.Admin.DeleteCategory)
				adminCategory.POST("/questions", h.Admin.CreateQuestion)
			}

			adminQuestion := admin.Group("/questions/:id", middleware.ExtractUintParam("id", ContextQuestionID))
			{
				adminQuestion.GET("", h.Admin.GetQuestion)
				adminQuestion.PUT("", h.Admin.UpdateQuestion)
				adminQuestion.DELETE("", h.Admin.DeleteQuestion)
			}

			admin.GET("/results", h.Admin.ListResults)
			admin.GET("/results/export", h.Admin.ExportResults)
			admin.DELETE("/results/:id", middleware.ExtractUintParam("id", ContextAdminResultID), h.Admin.DeleteResult)
		}
	}

	router.GET("/ws/leaderboard", h.WS.HandleLeaderboardFeed)
}
