package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/tubegram/internal/config"
	"github.com/pders01/tubegram/internal/session"
	"github.com/pders01/tubegram/internal/tui"
	"github.com/pders01/tubegram/internal/youtube"
)

var (
	apiServer *httptest.Server
	requests  = &requestLog{}
)

type requestLog struct {
	mu    sync.Mutex
	terms []string
	keys  []string
}

func (l *requestLog) add(term, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.terms = append(l.terms, term)
	l.keys = append(l.keys, key)
}

func (l *requestLog) last() (string, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.terms) == 0 {
		return "", ""
	}
	return l.terms[len(l.terms)-1], l.keys[len(l.keys)-1]
}

func TestMain(m *testing.M) {
	apiServer = httptest.NewServer(http.HandlerFunc(serveSearch))

	code := m.Run()

	apiServer.Close()
	os.Exit(code)
}

// serveSearch mimics the Data API search endpoint. The query term picks
// the fixture.
func serveSearch(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/youtube/v3/search" {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	requests.add(q.Get("q"), q.Get("key"))

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	switch q.Get("q") {
	case "lofi":
		writeFixture(w, http.StatusOK, "search_lofi.json")
	case "quota":
		writeFixture(w, http.StatusForbidden, "error_quota.json")
	case "broken":
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"items": [{"id": `)
	case "slow":
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
		writeFixture(w, http.StatusOK, "search_lofi.json")
	default:
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"kind": "youtube#searchListResponse", "items": []}`)
	}
}

func writeFixture(w http.ResponseWriter, status int, name string) {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func newClient(t *testing.T, timeout time.Duration) *youtube.Client {
	t.Helper()
	client, err := youtube.NewClient(context.Background(), youtube.Options{
		APIKey:     "integration-key",
		Endpoint:   apiServer.URL + "/youtube/v3/",
		UserAgent:  "tubegram-integration/1.0",
		MaxResults: 10,
		Timeout:    timeout,
	})
	require.NoError(t, err)
	return client
}

func newApp(t *testing.T) *tui.App {
	t.Helper()
	app := tui.NewApp(newClient(t, 5*time.Second), config.TestConfig())
	app.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	t.Cleanup(func() { _ = app.Close() })
	return app
}

// drain runs cmd and feeds every message it produces back into the app.
func drain(app *tui.App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			drain(app, c)
		}
	default:
		// Follow-up commands (spinner ticks, cursor blinks) are timers.
		app.Update(msg)
	}
}

func search(app *tui.App, term string) {
	for _, r := range term {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(app, cmd)
}

func TestIntegration_SearchAndSelect(t *testing.T) {
	app := newApp(t)

	search(app, "lofi")

	term, key := requests.last()
	assert.Equal(t, "lofi", term)
	assert.Equal(t, "integration-key", key)

	state := app.State()
	require.Equal(t, session.Succeeded, state.Request())
	videos := state.Videos()
	require.Len(t, videos, 2, "channel results are skipped")
	assert.Equal(t, "jfKfPfyJRdk", videos[0].ID)
	assert.Equal(t, "4xDzrJKXOOY", videos[1].ID)
	assert.Equal(t, "jfKfPfyJRdk", state.Selection().ID())

	view := app.View()
	assert.Contains(t, view, "synthwave radio")
	assert.NotContains(t, view, "Error:")

	// Move to the list and pick the second video.
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	after := app.State()
	assert.Equal(t, "4xDzrJKXOOY", after.Selection().ID())
	assert.Equal(t, videos, after.Videos())
}

func TestIntegration_APIErrorKeepsPreviousResults(t *testing.T) {
	app := newApp(t)
	search(app, "lofi")
	require.Len(t, app.State().Videos(), 2)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlU}) // clear the input
	search(app, "quota")

	state := app.State()
	require.True(t, state.Failed())
	assert.Equal(t, "The request cannot be completed because you have exceeded your quota.", state.Err())
	assert.Len(t, state.Videos(), 2)
	assert.True(t, state.Selection().IsNone())
	assert.Contains(t, app.View(), "Error: The request cannot be completed")
}

func TestIntegration_MalformedResponse(t *testing.T) {
	app := newApp(t)
	search(app, "broken")

	state := app.State()
	require.True(t, state.Failed())
	assert.True(t, strings.Contains(state.Err(), "malformed response"), state.Err())
}

func TestIntegration_EmptyResult(t *testing.T) {
	app := newApp(t)
	search(app, "zzzz-nothing")

	state := app.State()
	assert.Equal(t, session.Succeeded, state.Request())
	assert.Empty(t, state.Videos())
	assert.True(t, state.Selection().IsNone())
	assert.Contains(t, app.View(), "Pick a video from the list to play it.")
}

func TestIntegration_ClientTimeout(t *testing.T) {
	client := newClient(t, 100*time.Millisecond)

	start := time.Now()
	_, err := client.Search(context.Background(), "slow")
	require.Error(t, err)
	assert.ErrorIs(t, err, youtube.ErrTransport)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestIntegration_SupersededSearchIsCancelled(t *testing.T) {
	client := newClient(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.Search(ctx, "slow")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("search did not stop after cancellation")
	}
}
