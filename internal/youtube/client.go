package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

const (
	DefaultEndpoint   = "https://www.googleapis.com/youtube/v3/"
	DefaultMaxResults = 10
)

// Searcher is the minimal search API used by the TUI.
type Searcher interface {
	Search(ctx context.Context, term string) ([]Video, error)
}

// Options configures a Client.
type Options struct {
	APIKey     string
	Endpoint   string
	UserAgent  string
	MaxResults int64
	// Timeout bounds a single search. Zero leaves it to the caller's context.
	Timeout time.Duration
}

// Client talks to the Data API search endpoint with an API key.
type Client struct {
	service    *ytapi.Service
	maxResults int64
	timeout    time.Duration
}

var _ Searcher = (*Client)(nil)

// NewClient creates a read-only client. The API key is passed through untouched;
// an empty key sends unauthenticated requests and lets the API report the problem.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	clientOpts := []option.ClientOption{option.WithEndpoint(endpoint)}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	} else {
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	}
	if opts.UserAgent != "" {
		clientOpts = append(clientOpts, option.WithUserAgent(opts.UserAgent))
	}

	service, err := ytapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating YouTube service: %w", err)
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	return &Client{
		service:    service,
		maxResults: maxResults,
		timeout:    opts.Timeout,
	}, nil
}

// Search runs one snippet search for term. Errors are always *SearchError.
func (c *Client) Search(ctx context.Context, term string) ([]Video, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(term).
		MaxResults(c.maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyError(err)
	}
	// A 200 with a JSON null body decodes into a nil response.
	if resp == nil {
		return nil, &SearchError{
			Kind:    KindMalformedResponse,
			Message: "malformed response: empty body",
			Err:     ErrMalformedResponse,
		}
	}

	return videosFromResults(resp.Items), nil
}

// videosFromResults keeps the items that carry a video ID, in response order.
func videosFromResults(items []*ytapi.SearchResult) []Video {
	videos := make([]Video, 0, len(items))
	for _, item := range items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}

		v := Video{ID: item.Id.VideoId}
		if sn := item.Snippet; sn != nil {
			v.Title = sn.Title
			v.Description = sn.Description
			v.ChannelID = sn.ChannelId
			v.ChannelTitle = sn.ChannelTitle
			if sn.Thumbnails != nil && sn.Thumbnails.Default != nil {
				v.ThumbnailURL = sn.Thumbnails.Default.Url
			}
			if t, err := time.Parse(time.RFC3339, sn.PublishedAt); err == nil {
				v.PublishedAt = t
			}
		}
		videos = append(videos, v)
	}
	return videos
}
