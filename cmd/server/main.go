package main

import (
	"log"
	"net/http"

	_ "jobboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/handler"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/router"
	"jobboard/internal/service"
	"jobboard/internal/session"
	"jobboard/internal/view"
)

// @title Job Board API
// @version 1.0
// @description Server-rendered job board with local and OAuth login, company vacancy management and candidate browsing.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("view init: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vacancy{},
		&model.Application{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	sessions := session.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	vacancyRepo := repository.NewVacancyRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)

	// Initialize auth components
	states := auth.NewStateService(cfg.SessionSecret)
	providers := auth.NewProviders(cfg.BaseURL, map[model.Provider]auth.ProviderCredentials{
		model.ProviderGithub:   {ClientID: cfg.GithubClientID, ClientSecret: cfg.GithubClientSecret},
		model.ProviderGoogle:   {ClientID: cfg.GoogleClientID, ClientSecret: cfg.GoogleClientSecret},
		model.ProviderLinkedin: {ClientID: cfg.LinkedinClientID, ClientSecret: cfg.LinkedinClientSecret},
		model.ProviderXing:     {ClientID: cfg.XingClientID, ClientSecret: cfg.XingClientSecret},
	})

	// Initialize services
	authService := service.NewAuthService(userRepo)
	vacancyService := service.NewVacancyService(vacancyRepo, applicationRepo)

	// Initialize handlers
	gate := handler.NewGate(sessions, userRepo)
	authHandler := handler.NewAuthHandler(authService, sessions, providers, states)
	vacancyHandler := handler.NewVacancyHandler(vacancyService)

	// Register routes
	router.Register(e, gate, authHandler, vacancyHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
