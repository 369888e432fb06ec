package media

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pders01/tubegram/internal/config"
	"github.com/pders01/tubegram/internal/debuglog"
)

var ErrNoOpener = errors.New("no application found to open URL")

// Launcher starts external applications for a video: a player for the watch
// URL, or the system opener for the embed page.
type Launcher struct {
	videoPlayer   string
	defaultOpener string
	goos          string
	registry      *PlayerRegistry
	start         func(*exec.Cmd) error
}

func NewLauncher(cfg *config.Config) *Launcher {
	registry, err := NewPlayerRegistry()
	if err != nil {
		debuglog.Warnf("player definitions: %v", err)
		if registry == nil {
			registry = &PlayerRegistry{players: make(map[string]PlayerDefinition), goos: runtime.GOOS}
		}
	}

	l := &Launcher{
		defaultOpener: cfg.Media.DefaultOpener,
		goos:          runtime.GOOS,
		registry:      registry,
		start:         startDetached,
	}

	var players config.MediaPlayers
	switch runtime.GOOS {
	case "darwin":
		players = cfg.Media.Darwin
	case "linux":
		players = cfg.Media.Linux
	case "windows":
		players = cfg.Media.Windows
	default:
		players = cfg.Media.Darwin
	}

	l.videoPlayer = registry.FindAvailablePlayer(players.Video)
	if l.videoPlayer == "" {
		debuglog.Infof("no video player found among %v, falling back to %q", players.Video, l.defaultOpener)
	}

	return l
}

// VideoPlayer reports the player Play uses, or "" when it falls back to the opener.
func (l *Launcher) VideoPlayer() string {
	return l.videoPlayer
}

// PlayCommand builds the command Play would start for url.
func (l *Launcher) PlayCommand(url string) (*exec.Cmd, error) {
	if l.videoPlayer == "" {
		return l.OpenCommand(url)
	}

	cmd, err := l.registry.GetCommand(l.videoPlayer, url)
	if err != nil {
		debuglog.Warnf("player %s: %v", l.videoPlayer, err)
		cmd = exec.Command(l.videoPlayer, url)
	}
	return cmd, nil
}

// OpenCommand builds the system-opener command for url.
func (l *Launcher) OpenCommand(url string) (*exec.Cmd, error) {
	opener := l.defaultOpener
	if opener == "" {
		return nil, ErrNoOpener
	}
	if l.goos == "windows" && opener == "start" {
		return exec.Command("cmd", "/c", "start", "", url), nil
	}
	return exec.Command(opener, url), nil
}

// Play opens url in the configured video player.
func (l *Launcher) Play(url string) error {
	cmd, err := l.PlayCommand(url)
	if err != nil {
		return err
	}
	return l.run(cmd)
}

// OpenInBrowser opens url with the system opener.
func (l *Launcher) OpenInBrowser(url string) error {
	cmd, err := l.OpenCommand(url)
	if err != nil {
		return err
	}
	return l.run(cmd)
}

func (l *Launcher) run(cmd *exec.Cmd) error {
	debuglog.WithFields(map[string]interface{}{"args": cmd.Args}).Debugf("launching %s", cmd.Path)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Args[0], err)
	}
	return nil
}

// startDetached starts GUI applications without waiting for them.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
