package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/naviproai/navi-backend/internal/clients/identity"
	"github.com/naviproai/navi-backend/internal/clients/llm"
	"github.com/naviproai/navi-backend/internal/clients/redis"
	"github.com/naviproai/navi-backend/internal/clients/youtube"
	"github.com/naviproai/navi-backend/internal/data/repos"
	"github.com/naviproai/navi-backend/internal/db"
	navihttp "github.com/naviproai/navi-backend/internal/http"
	httpH "github.com/naviproai/navi-backend/internal/http/handlers"
	httpMW "github.com/naviproai/navi-backend/internal/http/middleware"
	"github.com/naviproai/navi-backend/internal/observability"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
	"github.com/naviproai/navi-backend/internal/roadmap"
	"github.com/naviproai/navi-backend/internal/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Log    *logger.Logger
	DB     *gorm.DB
	Server *navihttp.Server
	Cfg    Config

	videoCache   redis.VideoCache
	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := dbService.DB()

	// Repos
	userRepo := repos.NewUserRepo(theDB, log)
	roadmapRepo := repos.NewRoadmapRepo(theDB, log)
	progressRepo := repos.NewProgressRepo(theDB, log)
	chatRepo := repos.NewChatRepo(theDB, log)

	// Clients
	llmClient, err := llm.NewClient(log)
	llmConfigured := err == nil
	if err != nil {
		log.Warn("LLM client not configured, generation falls back to placeholders", "error", err)
	}

	youtubeClient := youtube.NewClient(log)

	videoCache, err := redis.NewVideoCache(log)
	if err != nil {
		log.Warn("Video cache disabled", "error", err)
		videoCache = redis.Disabled()
	}

	identityClient, err := identity.NewClient(log)
	if err != nil {
		log.Warn("Identity service not configured, using local JWT verification", "error", err)
		identityClient = nil
	}

	// Services
	generator := roadmap.NewGenerator(llmClient, log)
	roadmapService := services.NewRoadmapService(theDB, log, generator, userRepo, roadmapRepo, progressRepo)
	videoService := services.NewVideoService(log, youtubeClient, videoCache, userRepo, roadmapRepo, progressRepo)
	chatService := services.NewChatService(log, llmClient, userRepo, progressRepo, chatRepo)

	// Handlers
	roadmapHandler := httpH.NewRoadmapHandler(roadmapService)
	taskHandler := httpH.NewTaskHandler(roadmapService)
	videoHandler := httpH.NewVideoHandler(videoService)
	chatHandler := httpH.NewChatHandler(chatService)
	progressHandler := httpH.NewProgressHandler(roadmapService)
	healthHandler := httpH.NewHealthHandler(userRepo, llmConfigured, youtubeClient)

	// Middleware
	authMiddleware := httpMW.NewAuthMiddleware(log, identityClient)

	server := navihttp.NewServer(navihttp.RouterConfig{
		Log:             log,
		AuthMiddleware:  authMiddleware,
		RoadmapHandler:  roadmapHandler,
		TaskHandler:     taskHandler,
		VideoHandler:    videoHandler,
		ChatHandler:     chatHandler,
		ProgressHandler: progressHandler,
		HealthHandler:   healthHandler,
		ServiceName:     cfg.ServiceName,
	})

	return &App{
		Log:          log,
		DB:           theDB,
		Server:       server,
		Cfg:          cfg,
		videoCache:   videoCache,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.videoCache != nil {
		_ = a.videoCache.Close()
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = a.otelShutdown(ctx)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
