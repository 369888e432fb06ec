package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/tubegram/internal/config"
	"github.com/pders01/tubegram/internal/search"
	"github.com/pders01/tubegram/internal/youtube"
)

func TestVideoItems_MarksSelection(t *testing.T) {
	items := videoItems([]youtube.Video{lofiOne, lofiTwo}, "v2")
	require.Len(t, items, 2)

	first := items[0].(videoItem)
	second := items[1].(videoItem)
	assert.False(t, first.selected)
	assert.True(t, second.selected)
	assert.Equal(t, "▶ lofi one", first.Title())
	assert.Equal(t, "● lofi two", second.Title())
}

func TestVideoItems_NoSelection(t *testing.T) {
	items := videoItems([]youtube.Video{lofiOne, {ID: ""}}, "")
	for _, it := range items {
		assert.False(t, it.(videoItem).selected)
	}
	assert.Empty(t, videoItems(nil, "v1"))
}

func TestVideoItem_Description(t *testing.T) {
	assert.Equal(t, "Lofi Girl • https://i.ytimg.com/vi/v1/default.jpg", videoItem{video: lofiOne}.Description())
	assert.Equal(t, "Chillhop", videoItem{video: lofiTwo}.Description())
	assert.Equal(t, "unknown channel", videoItem{video: youtube.Video{ID: "x"}}.Description())
}

func TestVideoItem_FilterValue(t *testing.T) {
	fv := videoItem{video: lofiOne}.FilterValue()
	parts := strings.Split(fv, search.FieldSeparator)
	require.Len(t, parts, 3)
	assert.Equal(t, "▶ lofi one", parts[0])
	assert.Equal(t, "Lofi Girl", parts[1])
	assert.Equal(t, lofiOne.Description, parts[2])
}

func TestRankWith_NilFilterFallsBack(t *testing.T) {
	targets := []string{"lofi one", "jazz piano"}
	ranks := rankWith(nil)("jazz", targets)
	require.Len(t, ranks, 1)
	assert.Equal(t, 1, ranks[0].Index)
}

func TestRankWith_UsesIndex(t *testing.T) {
	f, err := search.NewFilter()
	require.NoError(t, err)
	defer f.Close()

	items := videoItems([]youtube.Video{lofiOne, lofiTwo, jazzPiano}, "")
	targets := make([]string, len(items))
	for i, it := range items {
		targets[i] = it.FilterValue()
	}

	ranks := rankWith(f)("piano", targets)
	require.Len(t, ranks, 1)
	assert.Equal(t, 2, ranks[0].Index)
	// "▶ jazz piano": the match offsets point into the rendered title.
	assert.Equal(t, []int{7, 8, 9, 10, 11}, ranks[0].MatchedIndexes)
}

func TestVideoListKeyMap_ConfiguredFilterKey(t *testing.T) {
	b := config.TestConfig().Keys.Bindings
	b.Filter = "f"
	b.Back = "backspace"

	km := videoListKeyMap(list.DefaultKeyMap(), b)

	assert.Equal(t, []string{"f"}, km.Filter.Keys())
	assert.Equal(t, []string{"backspace"}, km.ClearFilter.Keys())
	assert.Equal(t, []string{"backspace"}, km.CancelWhileFiltering.Keys())
	assert.NotContains(t, km.NextPage.Keys(), "f", "page keys must not shadow the filter key")
	assert.Contains(t, km.NextPage.Keys(), "pgdown")
}
