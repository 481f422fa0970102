package main

import (
	"log"
	"math/rand"

	"focusflow/backend/internal/config"
	"focusflow/backend/internal/db"
	"focusflow/backend/internal/handler"
	"focusflow/backend/internal/repository"
	"focusflow/backend/internal/router"
	"focusflow/backend/internal/service"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	habitRepo := repository.NewHabitRepository(database)
	eventRepo := repository.NewEventRepository(database)
	sessionRepo := repository.NewSessionRepository(database)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	taskService := service.NewTaskService(taskRepo)
	habitService := service.NewHabitService(habitRepo)
	calendarService := service.NewCalendarService(eventRepo)
	focusService := service.NewFocusService(taskRepo, sessionRepo, rand.Float64)
	rewriteService := service.NewRewriteService(cfg.RewriteBaseURL, cfg.RewriteAPIKey, cfg.RewriteModel, cfg.RewriteTimeout)

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Task:     handler.NewTaskHandler(taskService),
		Habit:    handler.NewHabitHandler(habitService),
		Calendar: handler.NewCalendarHandler(calendarService),
		Focus:    handler.NewFocusHandler(focusService),
		Rewrite:  handler.NewRewriteHandler(rewriteService),
	}

	engine := router.New(authService, handlers, cfg.CORSOrigins)
	log.Printf("backend listening on :%s", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
