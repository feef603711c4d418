// Package router wires the HTTP routes onto a gin engine.
package router

import (
	"net/http"

	"gamesrank/backend/internal/auth"
	"gamesrank/backend/internal/handler"
	"gamesrank/backend/internal/logging"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup builds the engine. h.Metrics may be nil, in which case /metrics is not served.
func Setup(h *handler.Handler, loginLimiter *auth.IPRateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware(h.Log))
	if h.Metrics != nil {
		router.Use(h.Metrics.Middleware())
		router.GET("/metrics", h.Metrics.Handler())
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	requireUser := auth.AuthMiddleware(h.Users)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.RegisterUser)
			if loginLimiter != nil {
				authRoutes.POST("/login", auth.RateLimit(loginLimiter), h.LoginUser)
			} else {
				authRoutes.POST("/login", h.LoginUser)
			}
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(requireUser)
		{
			userRoutes.GET("/me", h.GetMe)
		}

		// Catalog routes (protected)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(requireUser)
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/:id", h.GetGameByID)
			gameRoutes.GET("/:id/comments", h.GetGameComments)
		}

		apiV1.GET("/categories", requireUser, h.GetCategories)

		// Ranking routes (protected)
		rankingRoutes := apiV1.Group("/rankings")
		rankingRoutes.Use(requireUser)
		{
			rankingRoutes.GET("/editor/:categoryID", h.GetRankingEditor)
			rankingRoutes.GET("/mine", h.GetMyRankings)
			rankingRoutes.PUT("", h.SaveRanking)
			rankingRoutes.DELETE("/:id", h.DeleteRanking)
		}

		// Rating routes (protected)
		ratingRoutes := apiV1.Group("/ratings")
		ratingRoutes.Use(requireUser)
		{
			ratingRoutes.POST("", h.SaveRating)
			ratingRoutes.GET("/:gameID", h.GetMyRating)
		}

		// Statistics (protected)
		statsRoutes := apiV1.Group("/stats")
		statsRoutes.Use(requireUser)
		{
			statsRoutes.GET("", h.GetStats)
			statsRoutes.GET("/chart.png", h.GetStatsChart)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(requireUser, auth.AdminMiddleware())
		{
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.DELETE("", h.DeleteAllGames)
				adminGameRoutes.DELETE("/:id", h.DeleteGame)
				adminGameRoutes.POST("/import", h.ImportGames)
				adminGameRoutes.POST("/sync", h.SyncGames)
			}

			categories := adminRoutes.Group("/categories")
			{
				categories.GET("", h.AdminGetCategories)
				categories.POST("", h.CreateCategory)
				categories.GET("/:id", h.GetCategoryDetail)
				categories.PUT("/:id", h.RenameCategory)
				categories.DELETE("/:id", h.DeleteCategory)
				categories.POST("/:id/games", h.AddCategoryGame)
				categories.DELETE("/:id/games/:gameID", h.RemoveCategoryGame)
			}

			users := adminRoutes.Group("/users")
			{
				users.GET("", h.ListUsers)
				users.POST("", h.CreateUser)
				users.PATCH("/:id/active", h.SetUserActive)
				users.GET("/:id/activity", h.GetUserActivity)
			}

			adminRoutes.DELETE("/ratings/:id", h.DeleteRating)
			adminRoutes.GET("/stats/export", h.ExportStats)
			adminRoutes.GET("/activity/stream", h.StreamActivity)
		}
	}

	return router
}
