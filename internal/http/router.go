package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/naviproai/navi-backend/internal/http/handlers"
	httpMW "github.com/naviproai/navi-backend/internal/http/middleware"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *httpMW.AuthMiddleware

	RoadmapHandler  *httpH.RoadmapHandler
	TaskHandler     *httpH.TaskHandler
	VideoHandler    *httpH.VideoHandler
	ChatHandler     *httpH.ChatHandler
	ProgressHandler *httpH.ProgressHandler
	HealthHandler   *httpH.HealthHandler

	ServiceName string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	api := r.Group("/api")
	{
		// Health (public)
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.RoadmapHandler != nil {
			protected.POST("/generate_roadmap", cfg.RoadmapHandler.GenerateRoadmap)
			protected.GET("/user_roadmap", cfg.RoadmapHandler.GetUserRoadmap)
		}
		if cfg.TaskHandler != nil {
			protected.GET("/daily_task", cfg.TaskHandler.GetDailyTask)
			protected.POST("/complete_task", cfg.TaskHandler.CompleteTask)
		}
		if cfg.VideoHandler != nil {
			protected.GET("/week_videos", cfg.VideoHandler.GetWeekVideos)
		}
		if cfg.ChatHandler != nil {
			protected.POST("/chat", cfg.ChatHandler.Chat)
		}
		if cfg.ProgressHandler != nil {
			protected.GET("/user_progress", cfg.ProgressHandler.GetUserProgress)
		}
	}

	return r
}
