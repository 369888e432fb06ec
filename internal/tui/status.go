package tui

import (
	"fmt"
	"strings"
)

// Canonical short status messages used across the app.
const (
	MsgEmptyList      = "Start by searching for something."
	MsgNoSelection    = "Pick a video from the list to play it."
	MsgSearchHint     = "Search YouTube videos…"
	MsgLoadingVideos  = "Loading videos…"
	MsgNoResults      = "No videos found"
	MsgNothingToPlay  = "No video selected"
	MsgRendererFailed = "Could not render video details"
)

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 video"
	}
	return fmt.Sprintf("%d videos", n)
}

func MsgSearching(term string) string {
	return fmt.Sprintf("Searching for '%s'…", strings.TrimSpace(term))
}

func MsgPlaying(title, player string) string {
	if player == "" {
		return fmt.Sprintf("Opened '%s'", strings.TrimSpace(title))
	}
	return fmt.Sprintf("Playing '%s' in %s", strings.TrimSpace(title), player)
}

func MsgOpenedInBrowser(title string) string {
	return fmt.Sprintf("Opened '%s' in the browser", strings.TrimSpace(title))
}

// StatusKind is the severity of a status bar message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarn
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "success"
	case StatusWarn:
		return "warn"
	case StatusError:
		return "error"
	default:
		return "info"
	}
}

// statusLine is the transient message shown in place of the key help.
type statusLine struct {
	text string
	kind StatusKind
}

func (s statusLine) empty() bool {
	return s.text == ""
}

func (s statusLine) render(width int) string {
	switch s.kind {
	case StatusSuccess:
		return StatusSuccessStyle.Render(truncateEnd(s.text, width))
	case StatusWarn:
		return StatusWarnStyle.Render(truncateEnd(s.text, width))
	case StatusError:
		return StatusErrorStyle.Render(truncateEnd("✗ "+s.text, width))
	default:
		return StatusInfoStyle.Render(truncateEnd(s.text, width))
	}
}
