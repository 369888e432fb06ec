package youtube

import (
	"net/url"
	"time"
)

const (
	EmbedBaseURL = "https://www.youtube.com/embed/"
	WatchBaseURL = "https://www.youtube.com/watch"
)

// Video is one search hit reduced to the fields the UI displays.
type Video struct {
	ID           string    `json:"video_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelID    string    `json:"channel_id"`
	ChannelTitle string    `json:"channel_title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
}

// EmbedURL is the player URL derived from the video ID.
func (v Video) EmbedURL() string {
	return EmbedBaseURL + url.PathEscape(v.ID)
}

func (v Video) WatchURL() string {
	return WatchBaseURL + "?" + url.Values{"v": {v.ID}}.Encode()
}
