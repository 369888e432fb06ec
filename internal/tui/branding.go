package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/tubegram/internal/config"
)

const AppName = "tubegram"

// LogoLines is the canonical logo, one entry per terminal row.
var LogoLines = []string{
	"▀█▀ █ █ █▄▄ █▀▀ █▀▀ █▀█ ▄▀█ █▀▄▀█",
	" █  █▄█ █▄█ ██▄ █▄█ █▀▄ █▀█ █ ▀ █",
}

const CompactLogo = "▶ tubegram"

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF4E45"),
	lipgloss.Color("#FF7A59"),
	lipgloss.Color("#45A0F5"),
	lipgloss.Color("#3390EC"),
}

var (
	PrimaryColor   = lipgloss.Color("#FF4E45") // play-button red
	SecondaryColor = lipgloss.Color("#3390EC")
	AccentColor    = lipgloss.Color("#45A0F5")

	BackgroundColor = lipgloss.Color("#17212B")
	SurfaceColor    = lipgloss.Color("#242F3D")
	TextColor       = lipgloss.Color("#FFFFFF")
	MutedColor      = lipgloss.Color("#A3B3C3")

	ErrorColor   = lipgloss.Color("#F87171")
	SuccessColor = lipgloss.Color("#4ADE80")
	WarnColor    = lipgloss.Color("#FACC15")
)

var (
	LogoStyle          lipgloss.Style
	TitleStyle         lipgloss.Style
	FocusedTitleStyle  lipgloss.Style
	StatusBarStyle     lipgloss.Style
	ItemTitleStyle     lipgloss.Style
	ItemDescStyle      lipgloss.Style
	CursorItemStyle    lipgloss.Style
	SelectedItemStyle  lipgloss.Style
	MatchStyle         lipgloss.Style
	HelpStyle          lipgloss.Style
	ErrorMessageStyle  lipgloss.Style
	SeparatorStyle     lipgloss.Style
	StatusInfoStyle    lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusWarnStyle    lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

func buildStyles() {
	LogoStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Background(SurfaceColor).
		Bold(true)

	FocusedTitleStyle = lipgloss.NewStyle().
		Foreground(BackgroundColor).
		Background(AccentColor).
		Bold(true).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 1)

	ItemTitleStyle = lipgloss.NewStyle().
		Foreground(TextColor)

	ItemDescStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	CursorItemStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(AccentColor).
		Padding(0, 0, 0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	MatchStyle = lipgloss.NewStyle().
		Foreground(AccentColor).
		Underline(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	ErrorMessageStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessColor)

	StatusWarnStyle = lipgloss.NewStyle().
		Foreground(WarnColor)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
}

// ApplyColors overrides the palette with the configured colors. Empty
// entries keep the built-in value.
func ApplyColors(c config.UIColors) {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&PrimaryColor, c.Primary)
	set(&SecondaryColor, c.Secondary)
	set(&AccentColor, c.Accent)
	set(&BackgroundColor, c.Background)
	set(&SurfaceColor, c.Surface)
	set(&TextColor, c.Text)
	set(&MutedColor, c.Muted)
	set(&ErrorColor, c.Error)
	set(&SuccessColor, c.Success)
	buildStyles()
}

// LogoWidth is the widest logo row in cells.
func LogoWidth() int {
	w := 0
	for _, line := range LogoLines {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}

func GetWelcomeMessage() string {
	return GetCompactBanner(MsgEmptyList)
}

func GetCompactBanner(message string) string {
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}

// Banner renders the boxed logo with the version tagline.
func Banner(version string) string {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("YouTube search in your terminal %s", versionTag))
	} else {
		lines = append(lines, "YouTube search in your terminal")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}

		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(i < len(LogoLines))

		coloredLines = append(coloredLines, style.Render(line))
	}

	borderChars := lipgloss.Border{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}

	banner := lipgloss.NewStyle().
		Border(borderChars).
		BorderForeground(SecondaryColor).
		Padding(1, 3).
		MarginTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, coloredLines...))

	separator := lipgloss.NewStyle().
		Foreground(AccentColor).
		Render("▶ ▷ ▶ ▷ ▶")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Width(60).Align(lipgloss.Center).Render(banner),
		lipgloss.NewStyle().Width(60).Align(lipgloss.Center).MarginBottom(1).Render(separator),
	)
}

func ShowBanner(version string) {
	fmt.Println(Banner(version))
}
