package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	dbadapter "focusflow/internal/adapter/db"
	httpadapter "focusflow/internal/adapter/http"
	"focusflow/internal/adapter/http/handlers"
	httpmiddleware "focusflow/internal/adapter/http/middleware"
	"focusflow/internal/app/service"
	"focusflow/internal/config"
	"focusflow/internal/seed"
	"focusflow/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	store, err := dbadapter.NewSnapshotRepository(db)
	if err != nil {
		logger.Fatal("failed to prepare snapshot store", zap.Error(err))
	}

	workspace := service.NewWorkspace(store)
	ctx := context.Background()
	if err := workspace.LoadFromStore(ctx); err != nil {
		logger.Fatal("failed to restore workspace snapshot", zap.Error(err))
	}
	if err := seed.Apply(ctx, cfg.TemplateSeedPath, workspace, workspace); err != nil {
		logger.Warn("failed to seed recurring templates", zap.Error(err))
	}

	// The recurring scheduler is tick-driven; the ticker lives here, not
	// inside the engine.
	if cfg.RecurringTickSec > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.RecurringTickSec) * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				if spawned, err := workspace.RunRecurringCheck(ctx); err != nil {
					logger.Warn("recurring check failed", zap.Error(err))
				} else if spawned > 0 {
					logger.Info("recurring templates spawned tasks", zap.Int("spawned", spawned))
				}
			}
		}()
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsOrigins) == 1 && cfg.CorsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CorsOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Accept-Language")
	r.Use(cors.New(corsConfig))
	r.Use(httpmiddleware.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Zones:     handlers.NewZoneHandler(workspace),
		Tasks:     handlers.NewTaskHandler(workspace),
		Tree:      handlers.NewTreeHandler(workspace),
		Clipboard: handlers.NewClipboardHandler(workspace),
		Templates: handlers.NewTemplateHandler(workspace),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
