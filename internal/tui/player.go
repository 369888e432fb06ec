package tui

import (
	"fmt"
	"strings"

	"github.com/pders01/tubegram/internal/youtube"
)

// playerMarkdown describes the embedded player for v. The description is
// passed through as-is.
func playerMarkdown(v youtube.Video) string {
	var b strings.Builder
	title := strings.TrimSpace(v.Title)
	if title == "" {
		title = v.ID
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if v.ChannelTitle != "" {
		fmt.Fprintf(&b, "**Channel:** %s\n", v.ChannelTitle)
	}
	if !v.PublishedAt.IsZero() {
		fmt.Fprintf(&b, "**Published:** %s\n", v.PublishedAt.Format("2006-01-02"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "**Player:** %s\n\n", v.EmbedURL())
	if v.ThumbnailURL != "" {
		fmt.Fprintf(&b, "**Thumbnail:** %s\n\n", v.ThumbnailURL)
	}

	b.WriteString("---\n\n")
	if v.Description != "" {
		b.WriteString(v.Description)
		b.WriteString("\n")
	}
	return b.String()
}
