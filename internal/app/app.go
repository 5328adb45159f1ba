package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/email"
	"jobboard/internal/handlers"
	"jobboard/internal/logger"
	"jobboard/internal/middleware"
	"jobboard/internal/repositories"
	"jobboard/internal/routes"
	"jobboard/internal/services"
	"jobboard/internal/validator"
	"jobboard/internal/workers"
)

// Run boots the whole application and blocks until shutdown.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Database connection failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedSkills(db); err != nil {
		logger.Fatal("Skill seeding failed", "error", err)
	}
	if err := database.SeedFirstAdmin(db, cfg.FirstAdminEmail, cfg.FirstAdminPassword); err != nil {
		logger.Fatal("Admin seeding failed", "error", err)
	}

	emailProvider := email.NewProvider(cfg.Email)
	router := SetupRouter(db, emailProvider)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := workers.NewDeadlineWorker(db, repositories.NewJobRepository(), repositories.NewUserRepository())
	go worker.Run(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server listening", "addr", addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}

// SetupRouter assembles the gin engine with every middleware, service, and
// route. Tests call this directly with a test database and a fake mailer.
func SetupRouter(db *gorm.DB, emailProvider email.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.DBMiddleware(db))

	sc := services.NewServiceContainer(emailProvider)
	h := handlers.NewAppHandlers(sc, validator.New())
	routes.RegisterRoutes(r, h, repositories.NewUserRepository())

	return r
}
