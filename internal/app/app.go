package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/focusquest/focusquest/internal/config"
	"github.com/focusquest/focusquest/internal/db"
	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/repository"
	"github.com/focusquest/focusquest/internal/service"
	"github.com/focusquest/focusquest/internal/storage"
)

type App struct {
	Cfg           *config.Config
	DB            *sqlx.DB
	Engine        *engine.Engine
	AuthService   *service.AuthService
	NotifyService *service.NotifyService
	HelpService   *service.HelpService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)

	// Engine over the persistent snapshot store
	store := storage.New(database)
	eng := engine.New(store, nil)

	// Services
	notifyService := service.NewNotifyService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)
	helpService := service.NewHelpService(cfg.ContentPath)

	return &App{
		Cfg:           cfg,
		DB:            database,
		Engine:        eng,
		AuthService:   authService,
		NotifyService: notifyService,
		HelpService:   helpService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
