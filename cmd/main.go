package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yungbote/orderdesk-backend/internal/db"
	"github.com/yungbote/orderdesk-backend/internal/handlers"
	"github.com/yungbote/orderdesk-backend/internal/logger"
	"github.com/yungbote/orderdesk-backend/internal/middleware"
	"github.com/yungbote/orderdesk-backend/internal/observability"
	"github.com/yungbote/orderdesk-backend/internal/repos"
	"github.com/yungbote/orderdesk-backend/internal/server"
	"github.com/yungbote/orderdesk-backend/internal/services"
	"github.com/yungbote/orderdesk-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "orderdesk",
		Environment: logMode,
	})

	// Mongo
	log.Info("Setting up Mongo from main...")
	mongoService, err := db.NewMongoService(ctx, log)
	if err != nil {
		log.Error("Mongo init failed", "error", err)
		os.Exit(1)
	}
	if err := mongoService.EnsureIndexes(ctx); err != nil {
		log.Error("Mongo index setup failed", "error", err)
		os.Exit(1)
	}
	theDB := mongoService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	orderRepo := repos.NewOrderRepo(theDB, log)
	companyRepo := repos.NewCompanyRepo(theDB, log)

	// Services
	log.Info("Setting up Services from main...")
	orderService := services.NewOrderService(log, orderRepo, companyRepo)
	companyService := services.NewCompanyService(log, companyRepo, orderRepo)
	statsService := services.NewStatsService(log, orderRepo, companyRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	orderHandler := handlers.NewOrderHandler(orderService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Middleware
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:         "orderdesk",
		CORSOrigins:         utils.GetEnv("CORS_ORIGINS", "", log),
		OrderHandler:        orderHandler,
		CompanyHandler:      companyHandler,
		StatsHandler:        statsHandler,
		RequestIDMiddleware: requestIDMiddleware,
	})

	port := utils.GetEnv("PORT", "8080", log)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server exited", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownTimeout := utils.GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10, log)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Server shutdown failed", "error", err)
	}
	if err := mongoService.Close(shutdownCtx); err != nil {
		log.Warn("Mongo close failed", "error", err)
	}
	if err := otelShutdown(shutdownCtx); err != nil {
		log.Warn("Otel shutdown failed", "error", err)
	}
}
