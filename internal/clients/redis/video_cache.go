package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/naviproai/navi-backend/internal/clients/youtube"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

// VideoCache caches week-video lookups so repeated requests for the same
// focus do not burn YouTube quota. Optional; all methods are nil-safe.
type VideoCache interface {
	Get(ctx context.Context, focus, targetRole string) ([]youtube.Video, bool)
	Set(ctx context.Context, focus, targetRole string, videos []youtube.Video)
	Close() error
}

type videoCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewVideoCache connects to REDIS_ADDR. Returns an error when the address is
// not configured; callers treat the cache as absent in that case.
func NewVideoCache(log *logger.Logger) (VideoCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	ttl := 1 * time.Hour
	if v := strings.TrimSpace(os.Getenv("VIDEO_CACHE_TTL_SECONDS")); v != "" {
		if parsed, err := time.ParseDuration(v + "s"); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &videoCache{
		log: log.With("service", "RedisVideoCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

// Disabled returns a cache whose operations all no-op. Used when no redis
// address is configured.
func Disabled() VideoCache {
	return (*videoCache)(nil)
}

func cacheKey(focus, targetRole string) string {
	return fmt.Sprintf("week_videos:%s:%s", strings.ToLower(strings.TrimSpace(focus)), strings.ToLower(strings.TrimSpace(targetRole)))
}

func (vc *videoCache) Get(ctx context.Context, focus, targetRole string) ([]youtube.Video, bool) {
	if vc == nil || vc.rdb == nil {
		return nil, false
	}
	raw, err := vc.rdb.Get(ctx, cacheKey(focus, targetRole)).Bytes()
	if err != nil {
		return nil, false
	}
	var videos []youtube.Video
	if err := json.Unmarshal(raw, &videos); err != nil {
		vc.log.Warn("Corrupt cached video entry, dropping", "error", err)
		_ = vc.rdb.Del(ctx, cacheKey(focus, targetRole)).Err()
		return nil, false
	}
	return videos, true
}

func (vc *videoCache) Set(ctx context.Context, focus, targetRole string, videos []youtube.Video) {
	if vc == nil || vc.rdb == nil {
		return
	}
	raw, err := json.Marshal(videos)
	if err != nil {
		return
	}
	if err := vc.rdb.Set(ctx, cacheKey(focus, targetRole), raw, vc.ttl).Err(); err != nil {
		vc.log.Warn("Failed to cache videos", "error", err)
	}
}

func (vc *videoCache) Close() error {
	if vc == nil || vc.rdb == nil {
		return nil
	}
	return vc.rdb.Close()
}
