package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	AppName        = "tubegram"
	EnvPrefix      = "TUBEGRAM"
	configFileName = "config"
)

type Config struct {
	YouTube YouTubeConfig `mapstructure:"youtube"`
	UI      UIConfig      `mapstructure:"ui"`
	Media   MediaConfig   `mapstructure:"media"`
	Keys    KeyConfig     `mapstructure:"keys"`
	Log     LogConfig     `mapstructure:"log"`
}

type YouTubeConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Endpoint    string        `mapstructure:"endpoint"`
	MaxResults  int64         `mapstructure:"max_results"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
}

type UIConfig struct {
	Colors           UIColors     `mapstructure:"colors"`
	Player           PlayerConfig `mapstructure:"player"`
	ListWidthPercent int          `mapstructure:"list_width_percent"`
}

type UIColors struct {
	Primary    string `mapstructure:"primary"`
	Secondary  string `mapstructure:"secondary"`
	Accent     string `mapstructure:"accent"`
	Background string `mapstructure:"background"`
	Surface    string `mapstructure:"surface"`
	Text       string `mapstructure:"text"`
	Muted      string `mapstructure:"muted"`
	Error      string `mapstructure:"error"`
	Success    string `mapstructure:"success"`
}

type PlayerConfig struct {
	// GlamourStyle is a glamour standard style name ("dark", "light", "notty", ...) or "auto".
	GlamourStyle     string `mapstructure:"glamour_style"`
	WordWrapMaxWidth int    `mapstructure:"word_wrap_max_width"`
	WordWrapMinWidth int    `mapstructure:"word_wrap_min_width"`
}

type MediaConfig struct {
	Darwin        MediaPlayers `mapstructure:"darwin"`
	Linux         MediaPlayers `mapstructure:"linux"`
	Windows       MediaPlayers `mapstructure:"windows"`
	DefaultOpener string       `mapstructure:"default_opener"`
}

type MediaPlayers struct {
	Video []string `mapstructure:"video"`
}

type KeyConfig struct {
	Modifier string      `mapstructure:"modifier"`
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit        string `mapstructure:"quit"`
	FocusNext   string `mapstructure:"focus_next"`
	Filter      string `mapstructure:"filter"`
	Play        string `mapstructure:"play"`
	OpenBrowser string `mapstructure:"open_browser"`
	Back        string `mapstructure:"back"`
	Help        string `mapstructure:"help"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	logPath := filepath.Join(homeDir, ".tubegram", "tubegram.log")

	return &Config{
		YouTube: YouTubeConfig{
			Endpoint:    "https://www.googleapis.com/youtube/v3/",
			MaxResults:  10,
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "tubegram/1.0 (https://github.com/pders01/tubegram)",
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:    "#FF4E45",
				Secondary:  "#3390EC",
				Accent:     "#45A0F5",
				Background: "#17212B",
				Surface:    "#242F3D",
				Text:       "#FFFFFF",
				Muted:      "#A3B3C3",
				Error:      "#F87171",
				Success:    "#4ADE80",
			},
			Player: PlayerConfig{
				GlamourStyle:     "dark",
				WordWrapMaxWidth: 100,
				WordWrapMinWidth: 30,
			},
			ListWidthPercent: 40,
		},
		Media: MediaConfig{
			Darwin: MediaPlayers{
				Video: []string{"iina", "mpv", "vlc"},
			},
			Linux: MediaPlayers{
				Video: []string{"mpv", "vlc", "mplayer"},
			},
			Windows: MediaPlayers{
				Video: []string{"mpv", "vlc"},
			},
			DefaultOpener: getDefaultOpener(),
		},
		Keys: KeyConfig{
			Modifier: "ctrl",
			Bindings: KeyBindings{
				Quit:        "q",
				FocusNext:   "tab",
				Filter:      "/",
				Play:        "o",
				OpenBrowser: "b",
				Back:        "esc",
				Help:        "?",
			},
		},
		Log: LogConfig{
			Level: "off",
			File:  logPath,
		},
	}
}

func getDefaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "linux":
		return "xdg-open"
	case "windows":
		return "start"
	default:
		return "open"
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("youtube.api_key", cfg.YouTube.APIKey)
	v.SetDefault("youtube.endpoint", cfg.YouTube.Endpoint)
	v.SetDefault("youtube.max_results", cfg.YouTube.MaxResults)
	v.SetDefault("youtube.http_timeout", cfg.YouTube.HTTPTimeout)
	v.SetDefault("youtube.user_agent", cfg.YouTube.UserAgent)

	v.SetDefault("ui.colors.primary", cfg.UI.Colors.Primary)
	v.SetDefault("ui.colors.secondary", cfg.UI.Colors.Secondary)
	v.SetDefault("ui.colors.accent", cfg.UI.Colors.Accent)
	v.SetDefault("ui.colors.background", cfg.UI.Colors.Background)
	v.SetDefault("ui.colors.surface", cfg.UI.Colors.Surface)
	v.SetDefault("ui.colors.text", cfg.UI.Colors.Text)
	v.SetDefault("ui.colors.muted", cfg.UI.Colors.Muted)
	v.SetDefault("ui.colors.error", cfg.UI.Colors.Error)
	v.SetDefault("ui.colors.success", cfg.UI.Colors.Success)
	v.SetDefault("ui.player.glamour_style", cfg.UI.Player.GlamourStyle)
	v.SetDefault("ui.player.word_wrap_max_width", cfg.UI.Player.WordWrapMaxWidth)
	v.SetDefault("ui.player.word_wrap_min_width", cfg.UI.Player.WordWrapMinWidth)
	v.SetDefault("ui.list_width_percent", cfg.UI.ListWidthPercent)

	v.SetDefault("media.darwin.video", cfg.Media.Darwin.Video)
	v.SetDefault("media.linux.video", cfg.Media.Linux.Video)
	v.SetDefault("media.windows.video", cfg.Media.Windows.Video)
	v.SetDefault("media.default_opener", cfg.Media.DefaultOpener)

	v.SetDefault("keys.modifier", cfg.Keys.Modifier)
	v.SetDefault("keys.bindings.quit", cfg.Keys.Bindings.Quit)
	v.SetDefault("keys.bindings.focus_next", cfg.Keys.Bindings.FocusNext)
	v.SetDefault("keys.bindings.filter", cfg.Keys.Bindings.Filter)
	v.SetDefault("keys.bindings.play", cfg.Keys.Bindings.Play)
	v.SetDefault("keys.bindings.open_browser", cfg.Keys.Bindings.OpenBrowser)
	v.SetDefault("keys.bindings.back", cfg.Keys.Bindings.Back)
	v.SetDefault("keys.bindings.help", cfg.Keys.Bindings.Help)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
}

// Load reads configuration from configPath, or from config.toml in
// ~/.config/tubegram and the working directory. Environment variables
// prefixed with TUBEGRAM_ override file values; YOUTUBE_API_KEY is
// accepted as well for the API key.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, defaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", AppName)

		v.SetConfigName(configFileName)
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("youtube.api_key", EnvPrefix+"_YOUTUBE_API_KEY", "YOUTUBE_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	return &config, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.Log.File = expandPath(cfg.Log.File)
}

// Save writes config to path as TOML. The API key is never written.
func Save(config *Config, path string) error {
	v := viper.New()

	youtubeCfg := map[string]interface{}{
		"endpoint":     config.YouTube.Endpoint,
		"max_results":  config.YouTube.MaxResults,
		"http_timeout": config.YouTube.HTTPTimeout.String(),
		"user_agent":   config.YouTube.UserAgent,
	}

	uiCfg := map[string]interface{}{
		"colors": map[string]interface{}{
			"primary":    config.UI.Colors.Primary,
			"secondary":  config.UI.Colors.Secondary,
			"accent":     config.UI.Colors.Accent,
			"background": config.UI.Colors.Background,
			"surface":    config.UI.Colors.Surface,
			"text":       config.UI.Colors.Text,
			"muted":      config.UI.Colors.Muted,
			"error":      config.UI.Colors.Error,
			"success":    config.UI.Colors.Success,
		},
		"player": map[string]interface{}{
			"glamour_style":       config.UI.Player.GlamourStyle,
			"word_wrap_max_width": config.UI.Player.WordWrapMaxWidth,
			"word_wrap_min_width": config.UI.Player.WordWrapMinWidth,
		},
		"list_width_percent": config.UI.ListWidthPercent,
	}

	mediaCfg := map[string]interface{}{
		"darwin":         map[string]interface{}{"video": config.Media.Darwin.Video},
		"linux":          map[string]interface{}{"video": config.Media.Linux.Video},
		"windows":        map[string]interface{}{"video": config.Media.Windows.Video},
		"default_opener": config.Media.DefaultOpener,
	}

	keysCfg := map[string]interface{}{
		"modifier": config.Keys.Modifier,
		"bindings": map[string]interface{}{
			"quit":         config.Keys.Bindings.Quit,
			"focus_next":   config.Keys.Bindings.FocusNext,
			"filter":       config.Keys.Bindings.Filter,
			"play":         config.Keys.Bindings.Play,
			"open_browser": config.Keys.Bindings.OpenBrowser,
			"back":         config.Keys.Bindings.Back,
			"help":         config.Keys.Bindings.Help,
		},
	}

	logCfg := map[string]interface{}{
		"level": config.Log.Level,
		"file":  config.Log.File,
	}

	v.Set("youtube", youtubeCfg)
	v.Set("ui", uiCfg)
	v.Set("media", mediaCfg)
	v.Set("keys", keysCfg)
	v.Set("log", logCfg)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}

// DefaultConfigPath is where GenerateDefaultConfig writes when no path is given.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppName, configFileName+".toml")
}
