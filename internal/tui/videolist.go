package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/tubegram/internal/config"
	"github.com/pders01/tubegram/internal/search"
	"github.com/pders01/tubegram/internal/youtube"
)

const (
	selectedMarker  = "● "
	thumbnailMarker = "▶ "
)

type videoItem struct {
	video    youtube.Video
	selected bool
}

func (i videoItem) Title() string {
	if i.selected {
		return selectedMarker + i.video.Title
	}
	return thumbnailMarker + i.video.Title
}

func (i videoItem) Description() string {
	channel := i.video.ChannelTitle
	if channel == "" {
		channel = "unknown channel"
	}
	if i.video.ThumbnailURL == "" {
		return channel
	}
	return fmt.Sprintf("%s • %s", channel, i.video.ThumbnailURL)
}

// FilterValue packs the searchable fields for the list filter. The title
// field is the rendered title so match offsets line up with the view.
func (i videoItem) FilterValue() string {
	return search.Target(i.Title(), i.video.ChannelTitle, i.video.Description)
}

// videoItems renders one list row per video, in result order. The row whose
// ID equals selectedID carries the selection marker.
func videoItems(videos []youtube.Video, selectedID string) []list.Item {
	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = videoItem{video: v, selected: selectedID != "" && v.ID == selectedID}
	}
	return items
}

type videoDelegate struct{}

func (d videoDelegate) Height() int                             { return 2 }
func (d videoDelegate) Spacing() int                            { return 1 }
func (d videoDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d videoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	vi, ok := item.(videoItem)
	if !ok {
		return
	}

	width := m.Width() - 2
	if width <= 0 {
		return
	}

	title := truncateEnd(vi.Title(), width)
	desc := vi.video.ChannelTitle
	if vi.video.ThumbnailURL != "" {
		channel := truncateEnd(vi.video.ChannelTitle, width/2)
		desc = channel + " • " + truncateMiddle(vi.video.ThumbnailURL, width-lipgloss.Width(channel)-3)
	}
	desc = truncateEnd(desc, width)

	titleStyle := ItemTitleStyle
	if vi.selected {
		titleStyle = SelectedItemStyle
	}

	if m.FilterState() != list.Unfiltered {
		if matches := m.MatchesForItem(index); len(matches) > 0 {
			title = lipgloss.StyleRunes(title, matches, MatchStyle.Inherit(titleStyle), titleStyle)
		} else {
			title = titleStyle.Render(title)
		}
	} else {
		title = titleStyle.Render(title)
	}
	desc = ItemDescStyle.Render(desc)

	row := lipgloss.JoinVertical(lipgloss.Left, title, desc)
	if index == m.Index() {
		row = CursorItemStyle.Render(row)
	} else {
		row = lipgloss.NewStyle().PaddingLeft(2).Render(row)
	}
	fmt.Fprint(w, row)
}

func newVideoList(b config.KeyBindings) list.Model {
	l := list.New([]list.Item{}, videoDelegate{}, 0, 0)
	l.KeyMap = videoListKeyMap(l.KeyMap, b)
	l.Title = "Results"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("video", "videos")
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	return l
}

// videoListKeyMap points the list's filter bindings at the configured keys.
// The filter key is taken out of the navigation bindings, which the list
// checks first.
func videoListKeyMap(km list.KeyMap, b config.KeyBindings) list.KeyMap {
	km.Filter = key.NewBinding(key.WithKeys(b.Filter), key.WithHelp(b.Filter, "filter"))
	km.ClearFilter = key.NewBinding(key.WithKeys(b.Back), key.WithHelp(b.Back, "clear filter"))
	km.CancelWhileFiltering = key.NewBinding(key.WithKeys(b.Back), key.WithHelp(b.Back, "cancel"))

	for _, nav := range []*key.Binding{
		&km.CursorUp, &km.CursorDown,
		&km.PrevPage, &km.NextPage,
		&km.GoToStart, &km.GoToEnd,
		&km.ShowFullHelp, &km.CloseFullHelp,
	} {
		*nav = withoutKey(*nav, b.Filter)
	}
	return km
}

func withoutKey(b key.Binding, k string) key.Binding {
	keys := make([]string, 0, len(b.Keys()))
	for _, bk := range b.Keys() {
		if bk != k {
			keys = append(keys, bk)
		}
	}
	b.SetKeys(keys...)
	return b
}

// rankWith adapts a search.Filter to the list's FilterFunc. Any failure of
// the index falls back to the list's fuzzy default.
func rankWith(f *search.Filter) list.FilterFunc {
	return func(term string, targets []string) []list.Rank {
		if f == nil {
			return list.DefaultFilter(term, targets)
		}
		matches, err := f.Rank(term, targets)
		if err != nil {
			return list.DefaultFilter(term, targets)
		}
		ranks := make([]list.Rank, len(matches))
		for i, m := range matches {
			ranks[i] = list.Rank{Index: m.Index, MatchedIndexes: m.MatchedIndexes}
		}
		return ranks
	}
}
