// Package session holds the search state owned by the application shell.
//
// State is a value. Every transition returns a new State and leaves the
// receiver untouched, so views can be handed a copy without further care.
package session

import (
	"slices"
	"strings"

	"github.com/pders01/tubegram/internal/youtube"
)

// RequestState is the lifecycle of one search.
type RequestState int

const (
	Idle RequestState = iota
	Loading
	Succeeded
	Failed
)

func (r RequestState) String() string {
	switch r {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Selection is the video chosen for playback, or none.
type Selection struct {
	video youtube.Video
	ok    bool
}

func None() Selection {
	return Selection{}
}

func Some(v youtube.Video) Selection {
	return Selection{video: v, ok: true}
}

// Video returns the selected video and whether there is one.
func (s Selection) Video() (youtube.Video, bool) {
	return s.video, s.ok
}

// ID returns the selected video ID, or "" when nothing is selected.
func (s Selection) ID() string {
	if !s.ok {
		return ""
	}
	return s.video.ID
}

func (s Selection) IsNone() bool {
	return !s.ok
}

// State is the shell's single source of truth.
type State struct {
	videos     []youtube.Video
	selection  Selection
	request    RequestState
	err        string
	term       string
	generation uint64
}

// New returns the empty start-up state.
func New() State {
	return State{videos: []youtube.Video{}}
}

// Begin starts a new search for term. Blank terms are rejected and the
// state is returned unchanged. The returned generation identifies the
// request; results for any other generation are stale.
func (s State) Begin(term string) (State, uint64, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s, s.generation, false
	}

	s.generation++
	s.term = term
	s.request = Loading
	s.selection = None()
	s.err = ""
	return s, s.generation, true
}

// Succeed applies the result of generation gen. The result set is replaced
// wholesale and its first video becomes the selection.
func (s State) Succeed(gen uint64, videos []youtube.Video) (State, bool) {
	if !s.accepts(gen) {
		return s, false
	}

	s.videos = slices.Clone(videos)
	if s.videos == nil {
		s.videos = []youtube.Video{}
	}
	if len(s.videos) > 0 {
		s.selection = Some(s.videos[0])
	} else {
		s.selection = None()
	}
	s.request = Succeeded
	s.err = ""
	return s, true
}

// Fail records the failure of generation gen. The previous result set stays.
func (s State) Fail(gen uint64, message string) (State, bool) {
	if !s.accepts(gen) {
		return s, false
	}

	s.request = Failed
	s.err = message
	return s, true
}

// Select makes v the current selection. Nothing else changes.
func (s State) Select(v youtube.Video) State {
	s.selection = Some(v)
	return s
}

func (s State) accepts(gen uint64) bool {
	return s.request == Loading && gen == s.generation
}

// Videos returns a copy of the current result set.
func (s State) Videos() []youtube.Video {
	return slices.Clone(s.videos)
}

func (s State) Len() int              { return len(s.videos) }
func (s State) Selection() Selection  { return s.selection }
func (s State) Request() RequestState { return s.request }
func (s State) Loading() bool         { return s.request == Loading }
func (s State) Err() string           { return s.err }
func (s State) Term() string          { return s.term }
func (s State) Generation() uint64    { return s.generation }
func (s State) Failed() bool          { return s.request == Failed }
