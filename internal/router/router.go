package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/liftlog-dev/liftlog/internal/handlers"
	"github.com/liftlog-dev/liftlog/internal/middleware"
	"github.com/liftlog-dev/liftlog/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		workouts := api.Group("/workouts", middleware.AuthMiddleware())
		{
			workouts.GET("", handlers.GetWorkouts)
			workouts.POST("", handlers.CreateWorkout)
			workouts.GET("/count", handlers.GetWorkoutCount)
			workouts.GET("/:workout_id", handlers.GetWorkout)
			workouts.DELETE("/:workout_id", handlers.DeleteWorkout)
		}
	}

	return r
}
