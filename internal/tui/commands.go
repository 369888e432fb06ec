package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/tubegram/internal/youtube"
)

func (a *App) fetchVideos(ctx context.Context, gen uint64, term string) tea.Cmd {
	searcher := a.searcher
	return func() tea.Msg {
		videos, err := searcher.Search(ctx, term)
		if err != nil {
			return searchFailedMsg{gen: gen, err: err}
		}
		return videosLoadedMsg{gen: gen, videos: videos}
	}
}

func (a *App) playVideo(v youtube.Video) tea.Cmd {
	launcher := a.launcher
	return func() tea.Msg {
		if err := launcher.Play(v.WatchURL()); err != nil {
			return errorMsg{wrapErr("play", err)}
		}
		return statusMsg{text: MsgPlaying(v.Title, launcher.VideoPlayer()), kind: StatusSuccess}
	}
}

func (a *App) openInBrowser(v youtube.Video) tea.Cmd {
	launcher := a.launcher
	return func() tea.Msg {
		if err := launcher.OpenInBrowser(v.EmbedURL()); err != nil {
			return errorMsg{wrapErr("open", err)}
		}
		return statusMsg{text: MsgOpenedInBrowser(v.Title), kind: StatusSuccess}
	}
}
