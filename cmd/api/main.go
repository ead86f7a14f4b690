package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/alert"
	"github.com/rightsguard/backend/internal/api"
	"github.com/rightsguard/backend/internal/api/handlers"
	"github.com/rightsguard/backend/internal/cache/redis"
	"github.com/rightsguard/backend/internal/contacts"
	"github.com/rightsguard/backend/internal/guide"
	"github.com/rightsguard/backend/internal/incident"
	"github.com/rightsguard/backend/internal/llm"
	"github.com/rightsguard/backend/internal/metrics"
	"github.com/rightsguard/backend/internal/script"
	"github.com/rightsguard/backend/internal/storage/sqlite"
	"github.com/rightsguard/backend/pkg/config"
	appLogger "github.com/rightsguard/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting RightsGuard API Server")

	metrics.Init()

	sqliteClient, err := sqlite.NewClient(cfg.SQLite.Path)
	if err != nil {
		appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
	}
	defer sqliteClient.Close()

	if err := sqliteClient.InitSchema(); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	checks := map[string]handlers.Check{"sqlite": sqliteClient.Ping}

	var guideCache handlers.GuideCache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			appLogger.Warn("Redis unavailable, guides will not be cached", zap.Error(err))
		} else {
			defer redisClient.Close()
			guideCache = redisClient
			checks["redis"] = redisClient.Ping
		}
	}

	var completer llm.Completer
	if cfg.LLM.APIKey != "" {
		completer = llm.NewClient(llm.Config{
			APIKey:     cfg.LLM.APIKey,
			BaseURL:    cfg.LLM.BaseURL,
			Model:      cfg.LLM.Model,
			Timeout:    time.Duration(cfg.LLM.TimeoutSec) * time.Second,
			MaxRetries: cfg.LLM.MaxRetries,
		})
	} else {
		appLogger.Warn("No LLM API key configured, serving default guides and scripts")
	}

	var notifier alert.Notifier = alert.LogNotifier{}
	if sg := alert.NewSendGridNotifier(alert.SendGridConfig{
		APIKey:    cfg.Alert.SendGridAPIKey,
		FromEmail: cfg.Alert.FromEmail,
		FromName:  cfg.Alert.FromName,
	}); sg != nil {
		notifier = sg
	}

	contactService := contacts.NewService(sqliteClient)

	server := api.New(api.Options{
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:         cfg.Server.BodyLimit,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		Development:       cfg.Server.Development,
		AccessLog:         true,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		GuideTTL:          time.Duration(cfg.Cache.GuideTTLHours) * time.Hour,
	}, api.Dependencies{
		Guides:    guide.NewGenerator(completer),
		Scripts:   script.NewGenerator(completer),
		Cache:     guideCache,
		Contacts:  contactService,
		Alerts:    alert.NewService(sqliteClient, contactService, notifier),
		Incidents: incident.NewService(sqliteClient),
		Checks:    checks,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := server.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	if err := server.Shutdown(); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
