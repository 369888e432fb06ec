package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/tubegram/internal/config"
	"github.com/pders01/tubegram/internal/debuglog"
	"github.com/pders01/tubegram/internal/media"
	"github.com/pders01/tubegram/internal/search"
	"github.com/pders01/tubegram/internal/session"
	"github.com/pders01/tubegram/internal/validation"
	"github.com/pders01/tubegram/internal/youtube"
)

const (
	headerHeight = 3 // search input frame
	footerHeight = 2 // separator + status line
	minListWidth = 24
)

// mediaLauncher hands a video URL to an external program.
type mediaLauncher interface {
	Play(url string) error
	OpenInBrowser(url string) error
	VideoPlayer() string
}

var _ mediaLauncher = (*media.Launcher)(nil)

type App struct {
	config      *config.Config
	searcher    youtube.Searcher
	launcher    mediaLauncher
	filter      *search.Filter
	keyHandler  *KeyHandler
	searchInput textinput.Model
	videoList   list.Model
	viewport    viewport.Model
	spinner     spinner.Model
	help        help.Model
	focus       Focus
	state       session.State
	status      statusLine

	ctx         context.Context
	stop        context.CancelFunc
	cancel      context.CancelFunc // in-flight search
	initialTerm string

	width  int
	height int

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
	playerID        string // video currently rendered into the viewport
	playerDoc       string
}

func NewApp(searcher youtube.Searcher, cfg *config.Config) *App {
	ApplyColors(cfg.UI.Colors)

	si := textinput.New()
	si.Placeholder = MsgSearchHint
	si.Prompt = "🔍 "
	si.CharLimit = validation.MaxSearchTermRunes
	si.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(AccentColor)),
	)

	filter, err := search.NewFilter()
	if err != nil {
		debuglog.Warnf("result filter unavailable, using fuzzy matching: %v", err)
		filter = nil
	}

	videoList := newVideoList(cfg.Keys.Bindings)
	videoList.Filter = rankWith(filter)

	ctx, stop := context.WithCancel(context.Background())

	app := &App{
		config:      cfg,
		searcher:    searcher,
		launcher:    media.NewLauncher(cfg),
		filter:      filter,
		searchInput: si,
		videoList:   videoList,
		viewport:    viewport.New(0, 0),
		spinner:     sp,
		help:        help.New(),
		focus:       FocusSearch,
		state:       session.New(),
		ctx:         ctx,
		stop:        stop,
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

// SearchOnStart runs term as soon as the program starts.
func (a *App) SearchOnStart(term string) {
	a.initialTerm = term
}

// State returns a snapshot of the search state.
func (a *App) State() session.State {
	return a.state
}

// Close cancels any in-flight search and releases the result index.
func (a *App) Close() error {
	a.cancelSearch()
	a.stop()
	if a.filter != nil {
		return a.filter.Close()
	}
	return nil
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tea.EnterAltScreen}
	if a.initialTerm != "" {
		a.searchInput.SetValue(a.initialTerm)
		cmds = append(cmds, a.onSearch(a.initialTerm))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if !a.state.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case videosLoadedMsg:
		next, ok := a.state.Succeed(msg.gen, msg.videos)
		if !ok {
			debuglog.Debugf("dropping stale results for search %d", msg.gen)
			return a, nil
		}
		a.cancelSearch()
		a.state = next
		debuglog.WithFields(map[string]interface{}{
			"term":    a.state.Term(),
			"results": a.state.Len(),
		}).Infof("search succeeded")

		if a.state.Len() == 0 {
			a.setStatus(MsgNoResults, StatusWarn)
		} else {
			a.setStatus(MsgResultsCount(a.state.Len()), StatusInfo)
		}
		a.videoList.ResetFilter()
		a.videoList.ResetSelected()
		cmd := a.syncList()
		a.refreshPlayer()
		return a, cmd

	case searchFailedMsg:
		next, ok := a.state.Fail(msg.gen, searchErrorMessage(msg.err))
		if !ok {
			debuglog.Debugf("dropping stale failure for search %d: %v", msg.gen, msg.err)
			return a, nil
		}
		a.cancelSearch()
		a.state = next
		debuglog.WithField("term", a.state.Term()).Warnf("search failed: %v", msg.err)
		a.refreshPlayer()
		return a, a.syncList()

	case statusMsg:
		a.setStatus(msg.text, msg.kind)
		return a, nil

	case errorMsg:
		debuglog.Errorf("%v", msg.err)
		a.setStatus(msg.err.Error(), StatusError)
		return a, nil
	}

	// Everything else belongs to the bubbles components, most notably
	// the list's asynchronous filter results.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.videoList, cmd = a.videoList.Update(msg)
	cmds = append(cmds, cmd)
	if a.focus == FocusSearch {
		a.searchInput, cmd = a.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.focus == FocusPlayer {
		a.viewport, cmd = a.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// onSearch starts a search for the raw input. Blank input is ignored.
func (a *App) onSearch(raw string) tea.Cmd {
	term := validation.SanitizeSearchTerm(raw)
	next, gen, ok := a.state.Begin(term)
	if !ok {
		return nil
	}

	a.cancelSearch()
	ctx, cancel := context.WithCancel(a.ctx)
	a.cancel = cancel
	a.state = next

	debuglog.WithFields(map[string]interface{}{
		"term":       term,
		"generation": gen,
	}).Infof("search started")
	a.setStatus(MsgSearching(term), StatusInfo)
	a.refreshPlayer()

	return tea.Batch(
		a.syncList(),
		a.spinner.Tick,
		a.fetchVideos(ctx, gen, term),
	)
}

// onVideoSelect makes v the selection. The result set and request state
// are untouched.
func (a *App) onVideoSelect(v youtube.Video) tea.Cmd {
	a.state = a.state.Select(v)
	debuglog.WithField("video", v.ID).Debugf("video selected")
	cmd := a.syncList()
	a.refreshPlayer()
	return cmd
}

func (a *App) cancelSearch() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// syncList rebuilds the list rows from the state, keeping the cursor.
func (a *App) syncList() tea.Cmd {
	items := videoItems(a.state.Videos(), a.state.Selection().ID())
	cursor := a.videoList.Index()
	cmd := a.videoList.SetItems(items)
	if a.videoList.FilterState() == list.Unfiltered && cursor < len(items) {
		a.videoList.Select(cursor)
	}
	return cmd
}

func (a *App) setFocus(f Focus) tea.Cmd {
	a.focus = f
	if f == FocusSearch {
		return a.searchInput.Focus()
	}
	a.searchInput.Blur()
	return nil
}

func (a *App) setStatus(text string, kind StatusKind) {
	debuglog.WithField("kind", kind.String()).Debugf("status: %s", text)
	a.status = statusLine{text: text, kind: kind}
}

func (a *App) clearStatus() {
	a.status = statusLine{}
}

func (a *App) listWidth() int {
	pct := a.config.UI.ListWidthPercent
	if pct <= 0 || pct >= 100 {
		pct = 40
	}
	w := a.width * pct / 100
	if w < minListWidth {
		w = min(minListWidth, a.width)
	}
	return w
}

func (a *App) playerWidth() int {
	return max(a.width-a.listWidth()-1, 0)
}

func (a *App) bodyHeight() int {
	h := a.height - headerHeight - footerHeight - 1 // pane titles
	if a.help.ShowAll {
		h -= len(a.keyHandler.FullHelp()[0]) - 1
	}
	return max(h, 3)
}

func (a *App) resize() {
	a.searchInput.Width = max(a.width-8, 10)
	a.help.Width = a.width
	a.videoList.SetSize(a.listWidth(), a.bodyHeight())
	a.viewport.Width = a.playerWidth()
	a.viewport.Height = a.bodyHeight()
	a.refreshPlayer()
}

func (a *App) wordWrapWidth() int {
	w := a.playerWidth() - 2
	if maxW := a.config.UI.Player.WordWrapMaxWidth; maxW > 0 && w > maxW {
		w = maxW
	}
	if minW := a.config.UI.Player.WordWrapMinWidth; minW > 0 && w < minW {
		w = minW
	}
	return w
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := a.wordWrapWidth()
	if a.glamourRenderer == nil || a.rendererWidth != wordWrapWidth {
		styleOpt := glamour.WithStandardStyle(a.config.UI.Player.GlamourStyle)
		if a.config.UI.Player.GlamourStyle == "" || a.config.UI.Player.GlamourStyle == "auto" {
			styleOpt = glamour.WithAutoStyle()
		}
		r, err := glamour.NewTermRenderer(
			styleOpt,
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

// refreshPlayer renders the selected video into the viewport when the
// selection or the available width changed.
func (a *App) refreshPlayer() {
	v, ok := a.state.Selection().Video()
	if !ok {
		a.playerID = ""
		a.playerDoc = ""
		a.viewport.SetContent("")
		return
	}

	doc := playerMarkdown(v)
	sameVideo := a.playerID == v.ID && a.playerDoc == doc
	if sameVideo && a.glamourRenderer != nil && a.rendererWidth == a.wordWrapWidth() {
		return
	}

	content := doc
	if a.width > 0 {
		if r, err := a.getRenderer(); err != nil {
			debuglog.Warnf("%s: %v", MsgRendererFailed, err)
		} else if out, err := r.Render(doc); err != nil {
			debuglog.Warnf("%s: %v", MsgRendererFailed, err)
		} else {
			content = out
		}
	}

	a.playerID = v.ID
	a.playerDoc = doc
	a.viewport.SetContent(content)
	if !sameVideo {
		a.viewport.GotoTop()
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	header := renderInputFrame(a.searchInput.View(), a.focus == FocusSearch, max(a.width-4, 0))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.listView(),
		" ",
		a.playerView(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		renderSeparator(a.width),
		a.statusBarView(),
	)
}

func (a *App) listView() string {
	width := a.listWidth()
	title := renderPaneTitle("› "+CompactLogo+" results", a.focus == FocusResults, width)

	var content string
	switch {
	case a.state.Len() == 0 && width >= LogoWidth()+2 && !a.state.Loading():
		content = renderCentered(width, a.bodyHeight(), GetWelcomeMessage())
	case a.state.Len() == 0:
		content = renderCentered(width, a.bodyHeight(), renderMuted(MsgEmptyList))
	default:
		content = a.videoList.View()
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// playerView shows the loading indicator, the error message, or the player
// for the current selection, in that order of precedence.
func (a *App) playerView() string {
	width := a.playerWidth()
	height := a.bodyHeight()
	title := renderPaneTitle("› player", a.focus == FocusPlayer, width)

	var content string
	switch {
	case a.state.Loading():
		content = renderCentered(width, height, a.spinner.View()+" "+MsgLoadingVideos)
	case a.state.Failed():
		content = renderCentered(width, height, ErrorMessageStyle.Render("Error: "+a.state.Err()))
	case a.state.Selection().IsNone():
		content = renderCentered(width, height, renderMuted(MsgNoSelection))
	default:
		content = a.viewport.View()
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (a *App) statusBarView() string {
	if !a.status.empty() {
		return StatusBarStyle.Render(a.status.render(max(a.width-4, 0)))
	}
	if a.help.ShowAll {
		return StatusBarStyle.Render(a.help.FullHelpView(a.keyHandler.FullHelp()))
	}
	return StatusBarStyle.Render(a.help.ShortHelpView(a.keyHandler.ShortHelp()))
}

// Message types
type videosLoadedMsg struct {
	gen    uint64
	videos []youtube.Video
}

type searchFailedMsg struct {
	gen uint64
	err error
}

type statusMsg struct {
	text string
	kind StatusKind
}

type errorMsg struct {
	err error
}
