package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/tubegram/internal/youtube"
)

var (
	lofi1 = youtube.Video{ID: "v1", Title: "lofi one", ChannelTitle: "Lofi Girl"}
	lofi2 = youtube.Video{ID: "v2", Title: "lofi two", ChannelTitle: "Chillhop"}
)

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, Idle, s.Request())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Videos())
	assert.True(t, s.Selection().IsNone())
	assert.Empty(t, s.Err())
}

func TestBegin_RejectsBlankTerms(t *testing.T) {
	for _, term := range []string{"", " ", "\t\n  "} {
		s := New()
		next, gen, ok := s.Begin(term)
		assert.False(t, ok, "term %q should be rejected", term)
		assert.Equal(t, s, next)
		assert.Equal(t, uint64(0), gen)
	}
}

func TestBegin_StartsLoadingAndClearsSelectionAndError(t *testing.T) {
	s := New()
	s, gen, ok := s.Begin("lofi")
	require.True(t, ok)
	s, _ = s.Succeed(gen, []youtube.Video{lofi1, lofi2})

	s, gen, ok = s.Begin("  broken  ")
	require.True(t, ok)
	s, _ = s.Fail(gen, "quota exceeded")
	require.Equal(t, "quota exceeded", s.Err())

	s = s.Select(lofi2)
	next, gen2, ok := s.Begin("again")
	require.True(t, ok)

	assert.Equal(t, gen+1, gen2)
	assert.True(t, next.Loading())
	assert.True(t, next.Selection().IsNone())
	assert.Empty(t, next.Err())
	assert.Equal(t, "again", next.Term())
	assert.Len(t, next.Videos(), 2, "result set stays until the search resolves")
}

func TestSucceed_SelectsFirstVideo(t *testing.T) {
	s, gen, _ := New().Begin("lofi")
	s, ok := s.Succeed(gen, []youtube.Video{lofi1, lofi2})
	require.True(t, ok)

	assert.Equal(t, Succeeded, s.Request())
	assert.False(t, s.Loading())
	assert.Equal(t, []youtube.Video{lofi1, lofi2}, s.Videos())
	v, selected := s.Selection().Video()
	require.True(t, selected)
	assert.Equal(t, lofi1, v)
	assert.Empty(t, s.Err())
}

func TestSucceed_EmptyResult(t *testing.T) {
	s, gen, _ := New().Begin("lofi")
	s, _ = s.Succeed(gen, []youtube.Video{lofi1})

	s, gen, _ = s.Begin("xyz")
	s, ok := s.Succeed(gen, nil)
	require.True(t, ok)

	assert.NotNil(t, s.Videos())
	assert.Empty(t, s.Videos())
	assert.True(t, s.Selection().IsNone())
	assert.Empty(t, s.Err())
	assert.Equal(t, Succeeded, s.Request())
}

func TestFail_KeepsPreviousResultSet(t *testing.T) {
	s, gen, _ := New().Begin("lofi")
	s, _ = s.Succeed(gen, []youtube.Video{lofi1, lofi2})

	s, gen, _ = s.Begin("quota")
	s, ok := s.Fail(gen, "quota exceeded")
	require.True(t, ok)

	assert.Equal(t, Failed, s.Request())
	assert.True(t, s.Failed())
	assert.False(t, s.Loading())
	assert.Equal(t, "quota exceeded", s.Err())
	assert.Equal(t, []youtube.Video{lofi1, lofi2}, s.Videos())
	assert.True(t, s.Selection().IsNone())
}

func TestStaleGenerationsAreIgnored(t *testing.T) {
	s, first, _ := New().Begin("first")
	s, second, _ := s.Begin("second")

	stale, ok := s.Succeed(first, []youtube.Video{lofi1})
	assert.False(t, ok)
	assert.Equal(t, s, stale)

	stale, ok = s.Fail(first, "boom")
	assert.False(t, ok)
	assert.Equal(t, s, stale)

	s, ok = s.Succeed(second, []youtube.Video{lofi2})
	require.True(t, ok)
	assert.Equal(t, "v2", s.Selection().ID())

	// A resolved generation cannot be applied twice.
	_, ok = s.Fail(second, "late")
	assert.False(t, ok)
}

func TestSelect_OnlyChangesSelection(t *testing.T) {
	s, gen, _ := New().Begin("lofi")
	s, _ = s.Succeed(gen, []youtube.Video{lofi1, lofi2})

	before := s
	s = s.Select(lofi2)

	assert.Equal(t, "v2", s.Selection().ID())
	assert.Equal(t, before.Videos(), s.Videos())
	assert.Equal(t, before.Request(), s.Request())
	assert.Equal(t, before.Err(), s.Err())
	assert.Equal(t, "v1", before.Selection().ID(), "transitions do not mutate the receiver")
}

func TestSelect_AcceptsVideoOutsideResultSet(t *testing.T) {
	outsider := youtube.Video{ID: "elsewhere"}
	s := New().Select(outsider)
	assert.Equal(t, "elsewhere", s.Selection().ID())
	assert.Empty(t, s.Videos())
}

func TestSelectionID(t *testing.T) {
	assert.Equal(t, "", None().ID())
	assert.Equal(t, "v1", Some(lofi1).ID())
}

func TestVideosReturnsCopy(t *testing.T) {
	s, gen, _ := New().Begin("lofi")
	s, _ = s.Succeed(gen, []youtube.Video{lofi1})

	videos := s.Videos()
	videos[0].Title = "mutated"
	assert.Equal(t, "lofi one", s.Videos()[0].Title)
}

func TestRequestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", RequestState(42).String())
}
