package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

// Video is one recommendation as returned to clients.
type Video struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Channel     string `json:"channel"`
	Duration    string `json:"duration"`
	Views       string `json:"views"`
	Description string `json:"description,omitempty"`
}

// Client searches YouTube for topical videos. Search failures and empty
// result sets degrade to a fixed sample pair so callers never error out.
type Client interface {
	Search(ctx context.Context, query, targetRole string) []Video
	Configured() bool
}

const maxSearchResults = 8
const maxReturnedVideos = 6

type client struct {
	log        *logger.Logger
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a search client. An empty YOUTUBE_API_KEY is not an
// error; the client then always serves sample videos.
func NewClient(log *logger.Logger) Client {
	baseURL := strings.TrimSpace(os.Getenv("YOUTUBE_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/youtube/v3"
	}
	return &client{
		log:        log.With("service", "YouTubeClient"),
		apiKey:     strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) Configured() bool { return c.apiKey != "" }

func (c *client) Search(ctx context.Context, query, targetRole string) []Video {
	if c.apiKey == "" {
		c.log.Debug("No YouTube API key, returning sample videos")
		return SampleVideos(query)
	}

	enhancedQuery := fmt.Sprintf("%s %s tutorial coding", query, targetRole)

	videoIDs, err := c.searchVideoIDs(ctx, enhancedQuery)
	if err != nil {
		c.log.Warn("YouTube search failed", "error", err)
		return SampleVideos(query)
	}
	if len(videoIDs) == 0 {
		return SampleVideos(query)
	}

	videos, err := c.videoDetails(ctx, videoIDs)
	if err != nil {
		c.log.Warn("YouTube details lookup failed", "error", err)
		return SampleVideos(query)
	}
	if len(videos) == 0 {
		return SampleVideos(query)
	}

	sort.SliceStable(videos, func(i, j int) bool {
		vi, _ := strconv.ParseInt(videos[i].Views, 10, 64)
		vj, _ := strconv.ParseInt(videos[j].Views, 10, 64)
		return vi > vj
	})
	if len(videos) > maxReturnedVideos {
		videos = videos[:maxReturnedVideos]
	}
	return videos
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

func (c *client) searchVideoIDs(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxSearchResults))
	params.Set("order", "relevance")
	params.Set("videoDuration", "medium")

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

type detailsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (c *client) videoDetails(ctx context.Context, videoIDs []string) ([]Video, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", strings.Join(videoIDs, ","))

	var resp detailsResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		views := item.Statistics.ViewCount
		if views == "" {
			views = "0"
		}
		videos = append(videos, Video{
			Title:     item.Snippet.Title,
			URL:       fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.ID),
			Thumbnail: item.Snippet.Thumbnails.Medium.URL,
			Channel:   item.Snippet.ChannelTitle,
			Duration:  item.ContentDetails.Duration,
			Views:     views,
		})
	}
	return videos, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("youtube http %d: %s", resp.StatusCode, string(raw))
	}
	return json.Unmarshal(raw, out)
}

// SampleVideos is the fixed fallback pair served when search is unavailable
// or returns nothing.
func SampleVideos(query string) []Video {
	return []Video{
		{
			Title:       fmt.Sprintf("%s - Complete Tutorial", query),
			URL:         "https://youtube.com/watch?v=sample1",
			Thumbnail:   "https://i.ytimg.com/vi/sample/mqdefault.jpg",
			Channel:     "Programming Tutorial",
			Duration:    "PT15M30S",
			Views:       "150000",
			Description: fmt.Sprintf("Complete tutorial on %s for beginners...", query),
		},
		{
			Title:       fmt.Sprintf("Learn %s in 20 Minutes", query),
			URL:         "https://youtube.com/watch?v=sample2",
			Thumbnail:   "https://i.ytimg.com/vi/sample/mqdefault.jpg",
			Channel:     "Code Academy",
			Duration:    "PT20M15S",
			Views:       "89000",
			Description: fmt.Sprintf("Quick crash course on %s...", query),
		},
	}
}
