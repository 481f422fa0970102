package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusflow/backend/internal/handler"
	"focusflow/backend/internal/middleware"
	"focusflow/backend/internal/service"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Task     *handler.TaskHandler
	Habit    *handler.HabitHandler
	Calendar *handler.CalendarHandler
	Focus    *handler.FocusHandler
	Rewrite  *handler.RewriteHandler
}

func New(authService *service.AuthService, handlers Handlers, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", handlers.Auth.Register)
	auth.POST("/login", handlers.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.Auth(authService))

	tasks := authed.Group("/tasks")
	tasks.POST("", handlers.Task.Create)
	tasks.GET("", handlers.Task.List)
	tasks.GET("/:id", handlers.Task.Get)
	tasks.PUT("/:id", handlers.Task.Update)
	tasks.DELETE("/:id", handlers.Task.Delete)

	habits := authed.Group("/habits")
	habits.POST("", handlers.Habit.Create)
	habits.GET("", handlers.Habit.List)
	habits.PUT("/:id", handlers.Habit.Update)
	habits.DELETE("/:id", handlers.Habit.Delete)
	habits.POST("/:id/log", handlers.Habit.Log)
	habits.GET("/:id/logs", handlers.Habit.Logs)

	events := authed.Group("/events")
	events.POST("", handlers.Calendar.Create)
	events.GET("", handlers.Calendar.List)
	events.PUT("/:id", handlers.Calendar.Update)
	events.DELETE("/:id", handlers.Calendar.Delete)

	focus := authed.Group("/focus")
	focus.POST("/plan", handlers.Focus.GeneratePlan)
	focus.POST("/sessions", handlers.Focus.StartSession)
	focus.PUT("/sessions/:id/reflection", handlers.Focus.AddReflection)
	focus.GET("/sessions", handlers.Focus.History)

	authed.POST("/rewrite", handlers.Rewrite.Rewrite)

	return engine
}
