package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/tubegram/internal/config"
)

// keyMap holds the app-level bindings. Movement inside the list and the
// player is left to the bubbles components.
type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Submit      key.Binding
	FocusNext   key.Binding
	FocusPrev   key.Binding
	Select      key.Binding
	Filter      key.Binding
	Play        key.Binding
	OpenBrowser key.Binding
	Back        key.Binding
	Help        key.Binding
	Scroll      key.Binding
}

func newKeyMap(cfg *config.Config) keyMap {
	mod := cfg.Keys.Modifier + "+"
	b := cfg.Keys.Bindings
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys(b.Quit), key.WithHelp(b.Quit, "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		FocusNext:   key.NewBinding(key.WithKeys(b.FocusNext), key.WithHelp(b.FocusNext, "next pane")),
		FocusPrev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Filter:      key.NewBinding(key.WithKeys(b.Filter), key.WithHelp(b.Filter, "filter")),
		Play:        key.NewBinding(key.WithKeys(mod+b.Play), key.WithHelp(mod+b.Play, "play")),
		OpenBrowser: key.NewBinding(key.WithKeys(mod+b.OpenBrowser), key.WithHelp(mod+b.OpenBrowser, "browser")),
		Back:        key.NewBinding(key.WithKeys(b.Back), key.WithHelp(b.Back, "back")),
		Help:        key.NewBinding(key.WithKeys(b.Help), key.WithHelp(b.Help, "help")),
		Scroll:      key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	}
}

type KeyHandler struct {
	app    *App
	config *config.Config
	keys   keyMap
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, config: cfg, keys: newKeyMap(cfg)}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, kh.keys.ForceQuit) {
		kh.app.cancelSearch()
		return kh.app, tea.Quit
	}

	kh.app.clearStatus()

	if kh.isFilteringList() {
		return kh.delegateToCharm(msg)
	}

	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(msg); handled {
		return model, cmd
	}

	return kh.delegateToCharm(msg)
}

func (kh *KeyHandler) isInTextInputMode() bool {
	return kh.app.focus == FocusSearch && kh.app.searchInput.Focused()
}

// isFilteringList reports whether the list owns the keyboard for its
// filter prompt.
func (kh *KeyHandler) isFilteringList() bool {
	return kh.app.focus == FocusResults && kh.app.videoList.SettingFilter()
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, kh.keys.Submit):
		return kh.app, kh.app.onSearch(kh.app.searchInput.Value())
	case key.Matches(msg, kh.keys.FocusNext):
		return kh.app, kh.app.setFocus(kh.app.focus.next())
	case key.Matches(msg, kh.keys.FocusPrev):
		return kh.app, kh.app.setFocus(kh.app.focus.prev())
	case key.Matches(msg, kh.keys.Play), key.Matches(msg, kh.keys.OpenBrowser):
		if model, cmd, handled := kh.handleMediaKeys(msg); handled {
			return model, cmd
		}
	}
	return kh.delegateToTextInput(msg)
}

func (kh *KeyHandler) delegateToTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	kh.app.searchInput, cmd = kh.app.searchInput.Update(msg)
	return kh.app, cmd
}

func (kh *KeyHandler) handleCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, kh.keys.Quit):
		kh.app.cancelSearch()
		return kh.app, tea.Quit, true
	case key.Matches(msg, kh.keys.Help):
		kh.app.help.ShowAll = !kh.app.help.ShowAll
		kh.app.resize()
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.FocusNext):
		return kh.app, kh.app.setFocus(kh.app.focus.next()), true
	case key.Matches(msg, kh.keys.FocusPrev):
		return kh.app, kh.app.setFocus(kh.app.focus.prev()), true
	}

	if model, cmd, handled := kh.handleMediaKeys(msg); handled {
		return model, cmd, true
	}

	switch kh.app.focus {
	case FocusResults:
		return kh.handleResultsCustomKeys(msg)
	case FocusPlayer:
		return kh.handlePlayerCustomKeys(msg)
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) handleResultsCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, kh.keys.Select):
		if item, ok := kh.app.videoList.SelectedItem().(videoItem); ok {
			return kh.app, kh.app.onVideoSelect(item.video), true
		}
		return kh.app, nil, true
	case key.Matches(msg, kh.keys.Back):
		// An applied filter is cleared by the list before esc means back.
		if kh.app.videoList.FilterState() == list.FilterApplied {
			return kh.app, nil, false
		}
		model, cmd := kh.navigateBack()
		return model, cmd, true
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) handlePlayerCustomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if key.Matches(msg, kh.keys.Back) {
		model, cmd := kh.navigateBack()
		return model, cmd, true
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) handleMediaKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	var play bool
	switch {
	case key.Matches(msg, kh.keys.Play):
		play = true
	case key.Matches(msg, kh.keys.OpenBrowser):
	default:
		return kh.app, nil, false
	}

	v, ok := kh.app.state.Selection().Video()
	if !ok {
		kh.app.setStatus(MsgNothingToPlay, StatusWarn)
		return kh.app, nil, true
	}
	if play {
		return kh.app, kh.app.playVideo(v), true
	}
	return kh.app, kh.app.openInBrowser(v), true
}

func (kh *KeyHandler) delegateToCharm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch kh.app.focus {
	case FocusResults:
		kh.app.videoList, cmd = kh.app.videoList.Update(msg)
	case FocusPlayer:
		kh.app.viewport, cmd = kh.app.viewport.Update(msg)
	case FocusSearch:
		return kh.delegateToTextInput(msg)
	}
	return kh.app, cmd
}

func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	switch kh.app.focus {
	case FocusPlayer:
		return kh.app, kh.app.setFocus(FocusResults)
	case FocusResults:
		return kh.app, kh.app.setFocus(FocusSearch)
	}
	return kh.app, nil
}

// ShortHelp returns the bindings shown in the status bar for the focused pane.
func (kh *KeyHandler) ShortHelp() []key.Binding {
	k := kh.keys
	switch kh.app.focus {
	case FocusSearch:
		return []key.Binding{k.Submit, k.FocusNext, k.Play, k.OpenBrowser, k.ForceQuit}
	case FocusResults:
		if kh.app.videoList.SettingFilter() {
			return []key.Binding{
				key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
				key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			}
		}
		return []key.Binding{k.Select, k.Filter, k.Play, k.OpenBrowser, k.Back, k.Help, k.Quit}
	case FocusPlayer:
		return []key.Binding{k.Scroll, k.Play, k.OpenBrowser, k.Back, k.Help, k.Quit}
	}
	return nil
}

// FullHelp groups every binding for the expanded help view.
func (kh *KeyHandler) FullHelp() [][]key.Binding {
	k := kh.keys
	return [][]key.Binding{
		{k.Submit, k.Select, k.Filter},
		{k.FocusNext, k.FocusPrev, k.Back},
		{k.Play, k.OpenBrowser, k.Scroll},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
