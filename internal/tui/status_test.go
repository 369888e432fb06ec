package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessages(t *testing.T) {
	assert.Equal(t, "1 video", MsgResultsCount(1))
	assert.Equal(t, "0 videos", MsgResultsCount(0))
	assert.Equal(t, "12 videos", MsgResultsCount(12))
	assert.Equal(t, "Searching for 'lofi'…", MsgSearching("  lofi "))
	assert.Equal(t, "Playing 'Tiny Desk' in mpv", MsgPlaying("Tiny Desk", "mpv"))
	assert.Equal(t, "Opened 'Tiny Desk'", MsgPlaying("Tiny Desk", ""))
	assert.Equal(t, "Opened 'Tiny Desk' in the browser", MsgOpenedInBrowser("Tiny Desk"))
}

func TestStatusKindString(t *testing.T) {
	assert.Equal(t, "info", StatusInfo.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "error", StatusError.String())
}

func TestStatusLineRender(t *testing.T) {
	assert.True(t, statusLine{}.empty())

	line := statusLine{text: "no player found", kind: StatusError}
	assert.Contains(t, line.render(80), "✗ no player found")
	assert.NotContains(t, line.render(8), "found")
}
