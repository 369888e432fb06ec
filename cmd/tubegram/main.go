package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/tubegram/internal/config"
	"github.com/pders01/tubegram/internal/debuglog"
	"github.com/pders01/tubegram/internal/tui"
	"github.com/pders01/tubegram/internal/validation"
	"github.com/pders01/tubegram/internal/youtube"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath string
	apiKey     string
	maxResults int64
	logLevel   string
	logFile    string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "tubegram [query]",
	Short: "Search and play YouTube videos from the terminal",
	Long: `tubegram searches YouTube and plays the selected video in an external player.

The API key is read from youtube.api_key in the config file, or from the
TUBEGRAM_YOUTUBE_API_KEY or YOUTUBE_API_KEY environment variables.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tubegram %s\n", Version)
		fmt.Println("YouTube search in your terminal")
		fmt.Println("github.com/pders01/tubegram")
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configGenCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.DefaultConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.GenerateDefaultConfig(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated default configuration at: %s\n", path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default configuration path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.DefaultConfigPath())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	flags.StringVar(&apiKey, "api-key", "", "YouTube Data API key (overrides config)")
	flags.Int64Var(&maxResults, "max-results", 0, "Videos per search (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off")
	flags.StringVar(&logFile, "log-file", "", "Log file path (overrides config)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Skip startup banner")

	configCmd.AddCommand(configGenCmd, configPathCmd)
	rootCmd.AddCommand(versionCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}
	defer debuglog.Close()

	if !quiet {
		tui.ShowBanner(Version)
	}
	if cfg.YouTube.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: no YouTube API key configured, searches will fail until one is set")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := newSearcher(ctx, cfg)
	if err != nil {
		return err
	}

	app := tui.NewApp(client, cfg)
	defer app.Close()
	if term := strings.TrimSpace(strings.Join(args, " ")); term != "" {
		app.SearchOnStart(term)
	}

	debuglog.WithField("version", Version).Infof("starting tubegram")
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path != "" {
		resolved, err := validation.NewPermissivePathHandler().ConfigPath(path)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		path = resolved
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if apiKey != "" {
		cfg.YouTube.APIKey = apiKey
	}
	if maxResults > 0 {
		cfg.YouTube.MaxResults = maxResults
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	endpoint, err := validation.NewEndpointValidator().ValidateAndNormalize(cfg.YouTube.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid youtube.endpoint: %w", err)
	}
	cfg.YouTube.Endpoint = endpoint

	return cfg, nil
}

// setupLogging opens the log file. A path given on the command line may
// point anywhere; one from the config file must stay in tubegram's own
// directories.
func setupLogging(cfg *config.Config) error {
	level := debuglog.ParseLogLevel(cfg.Log.Level)
	if level == debuglog.LevelOff {
		return debuglog.Setup(debuglog.LevelOff)
	}

	handler := validation.NewSecurePathHandler()
	path := cfg.Log.File
	if logFile != "" {
		handler = validation.NewPermissivePathHandler()
		path = logFile
	}

	resolved, err := handler.LogPath(path)
	if err != nil {
		return fmt.Errorf("invalid log file: %w", err)
	}
	return debuglog.Setup(level, resolved)
}

func newSearcher(ctx context.Context, cfg *config.Config) (*youtube.Client, error) {
	client, err := youtube.NewClient(ctx, youtube.Options{
		APIKey:     cfg.YouTube.APIKey,
		Endpoint:   cfg.YouTube.Endpoint,
		UserAgent:  cfg.YouTube.UserAgent,
		MaxResults: cfg.YouTube.MaxResults,
		Timeout:    cfg.YouTube.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}
	return client, nil
}
