package services

import (
	"context"
	"fmt"

	"github.com/naviproai/navi-backend/internal/clients/redis"
	"github.com/naviproai/navi-backend/internal/clients/youtube"
	"github.com/naviproai/navi-backend/internal/data/repos"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
	"github.com/naviproai/navi-backend/internal/roadmap"
)

// WeekVideos is the recommendation payload for the user's current week.
type WeekVideos struct {
	WeekFocus   string          `json:"week_focus"`
	WeekInfo    string          `json:"week_info"`
	Videos      []youtube.Video `json:"videos"`
	TotalVideos int             `json:"total_videos"`
}

type VideoService interface {
	GetWeekVideos(ctx context.Context, userID string) (*WeekVideos, error)
}

type videoService struct {
	log          *logger.Logger
	youtube      youtube.Client
	cache        redis.VideoCache
	userRepo     repos.UserRepo
	roadmapRepo  repos.RoadmapRepo
	progressRepo repos.ProgressRepo
}

func NewVideoService(
	baseLog *logger.Logger,
	yt youtube.Client,
	cache redis.VideoCache,
	userRepo repos.UserRepo,
	roadmapRepo repos.RoadmapRepo,
	progressRepo repos.ProgressRepo,
) VideoService {
	return &videoService{
		log:          baseLog.With("service", "VideoService"),
		youtube:      yt,
		cache:        cache,
		userRepo:     userRepo,
		roadmapRepo:  roadmapRepo,
		progressRepo: progressRepo,
	}
}

// GetWeekVideos resolves the user's current week focus and returns topical
// recommendations, served from the cache when a fresh entry exists.
func (vs *videoService) GetWeekVideos(ctx context.Context, userID string) (*WeekVideos, error) {
	user, err := vs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	record, err := vs.roadmapRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRoadmapNotFound
	}

	progress, err := vs.progressRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, ErrProgressNotFound
	}

	doc, err := record.Document()
	if err != nil {
		return nil, err
	}

	week := roadmap.LocateWeek(doc, progress.CurrentMonth, progress.CurrentWeek)
	if week == nil {
		return nil, ErrWeekNotFound
	}

	if videos, ok := vs.cache.Get(ctx, week.Focus, user.TargetRole); ok {
		return &WeekVideos{
			WeekFocus:   week.Focus,
			WeekInfo:    fmt.Sprintf("Month %d, Week %d", progress.CurrentMonth, progress.CurrentWeek),
			Videos:      videos,
			TotalVideos: len(videos),
		}, nil
	}

	videos := vs.youtube.Search(ctx, week.Focus, user.TargetRole)
	vs.cache.Set(ctx, week.Focus, user.TargetRole, videos)

	return &WeekVideos{
		WeekFocus:   week.Focus,
		WeekInfo:    fmt.Sprintf("Month %d, Week %d", progress.CurrentMonth, progress.CurrentWeek),
		Videos:      videos,
		TotalVideos: len(videos),
	}, nil
}
