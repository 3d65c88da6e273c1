package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"yt-tools/config"
	"yt-tools/handlers/api"
	"yt-tools/logger"
	"yt-tools/services/video"
	"yt-tools/youtube"
)

func main() {
	// Load .env if present; system environment still wins for set variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found - using system environment variables only")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize YouTube client
	ytClient, err := youtube.NewClient(youtube.Config{
		ProxyURL: cfg.Proxy.URL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize YouTube client: %v", err)
	}

	// Initialize video service with its worker pool
	videoService := video.NewService(ytClient, video.Config{
		PoolSize:  cfg.Workers.PoolSize,
		QueueSize: cfg.Workers.QueueSize,
	})
	defer videoService.Close()

	// Initialize API server
	server := api.NewServer(cfg,
		api.WithService(videoService),
		api.WithLogger(appLogger),
	)

	logStartup(appLogger, cfg)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		appLogger.Info("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			appLogger.WithError(err).Error("Server shutdown error")
		}
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		appLogger.WithError(err).Fatal("Server error")
	}

	appLogger.Info("Server stopped")
}

func logStartup(appLogger *logrus.Logger, cfg *config.Config) {
	appLogger.WithFields(logrus.Fields{
		"host":    cfg.Host,
		"port":    cfg.Port,
		"version": cfg.Version,
	}).Info("YouTube tools API starting up")

	for _, endpoint := range []string{
		"GET  /health",
		"POST /video-data",
		"POST /video-captions",
		"POST /video-timestamps",
		"POST /video-transcript-languages",
	} {
		appLogger.WithField("endpoint", endpoint).Info("Route registered")
	}

	if cfg.Proxy.Enabled() {
		appLogger.WithField("proxy_username", cfg.Proxy.Username).Info("Webshare proxy enabled")
	} else {
		appLogger.Warn("Webshare proxy disabled - set WEBSHARE_PROXY to enable; transcript requests may face IP blocking")
	}

	appLogger.WithFields(logrus.Fields{
		"WEBSHARE_PROXY":          envPresence("WEBSHARE_PROXY"),
		"WEBSHARE_PROXY_USERNAME": envPresence("WEBSHARE_PROXY_USERNAME"),
	}).Info("Environment variables checked")

	appLogger.WithField("pool_size", cfg.Workers.PoolSize).Info("Parallel processing enabled")
}

func envPresence(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}
