// File: meetslot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetslot/config"
	"meetslot/cron"
	"meetslot/database"
	eventRepo "meetslot/database/repository/event"
	"meetslot/handlers"
	"meetslot/middleware"
	"meetslot/routes"
	"meetslot/services/meeting"
	"meetslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	cacheClient := utils.GetCacheClient()

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	utils.StartHealthMonitor(rootCtx, cacheClient, database.MongoClient)

	// repositories.
	events := eventRepo.NewMongoEventRepo()
	if err := events.EnsureIndexes(rootCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure event indexes: %v", err)
	}

	// services.
	ttl := time.Duration(config.AppConfig.ResultCacheTTLMinutes) * time.Minute
	meetingService := &meeting.DefaultMeetingService{
		Repo:   events,
		Cache:  meeting.NewRedisResultCache(cacheClient, ttl),
		Logger: logger,
	}

	// background precompute.
	queue := asynq.NewClient(cron.RedisOpt())
	defer queue.Close()
	worker := cron.InitPrecomputeWorker(meetingService, logger)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	meetingHandler := handlers.NewMeetingHandler(meetingService, queue, logger)
	calendarHandler := handlers.NewCalendarHandler(meetingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		QueryHandler:        meetingHandler.QueryHandler,
		QueryForDateHandler: meetingHandler.QueryForDateHandler,
		PrecomputeHandler:   meetingHandler.PrecomputeHandler,

		AddEventsHandler:   calendarHandler.AddEventsHandler,
		ListEventsHandler:  calendarHandler.ListEventsHandler,
		DeleteEventHandler: calendarHandler.DeleteEventHandler,
		ImportICSHandler:   calendarHandler.ImportICSHandler,

		HealthHandler: handlers.HealthHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	stopBackground()

	logger.Sugar().Info("main: server stopped gracefully")
}
