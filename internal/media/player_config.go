package media

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

//go:embed players.toml
var playersTOML []byte

// PlayerDefinition defines how a video player should be invoked
type PlayerDefinition struct {
	Description string   `toml:"description"`
	Platforms   []string `toml:"platforms"`
	Args        []string `toml:"args,omitempty"`
	ArgsDarwin  []string `toml:"args_darwin,omitempty"`
	ArgsLinux   []string `toml:"args_linux,omitempty"`
	ArgsWindows []string `toml:"args_windows,omitempty"`
}

// PlayersConfig holds all player definitions
type PlayersConfig struct {
	Players map[string]PlayerDefinition `toml:"players"`
}

// PlayerRegistry manages player definitions
type PlayerRegistry struct {
	players map[string]PlayerDefinition
	goos    string
}

// NewPlayerRegistry creates a registry from the embedded TOML merged with
// the user's players.toml files, if any.
func NewPlayerRegistry(userPaths ...string) (*PlayerRegistry, error) {
	registry, err := parseRegistry(playersTOML)
	if err != nil {
		return nil, fmt.Errorf("parsing players.toml: %w", err)
	}

	if len(userPaths) == 0 {
		userPaths = defaultUserPaths()
	}
	for _, path := range userPaths {
		if err := registry.Merge(path); err != nil && !os.IsNotExist(err) {
			return registry, err
		}
	}

	return registry, nil
}

func parseRegistry(data []byte) (*PlayerRegistry, error) {
	var config PlayersConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if config.Players == nil {
		config.Players = make(map[string]PlayerDefinition)
	}
	return &PlayerRegistry{players: config.Players, goos: runtime.GOOS}, nil
}

func defaultUserPaths() []string {
	paths := []string{"./players.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append([]string{filepath.Join(home, ".config", "tubegram", "players.toml")}, paths...)
	}
	return paths
}

// Merge loads definitions from path; they override built-in ones by name.
func (r *PlayerRegistry) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var userConfig PlayersConfig
	if err := toml.Unmarshal(data, &userConfig); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for name, def := range userConfig.Players {
		r.players[name] = def
	}
	return nil
}

// Lookup returns the definition registered under name.
func (r *PlayerRegistry) Lookup(name string) (PlayerDefinition, bool) {
	def, ok := r.players[name]
	return def, ok
}

// GetCommand builds the command that plays url with playerName.
func (r *PlayerRegistry) GetCommand(playerName, url string) (*exec.Cmd, error) {
	player, exists := r.players[playerName]
	if !exists {
		return exec.Command(playerName, url), nil
	}

	if !slices.Contains(player.Platforms, r.goos) {
		return nil, fmt.Errorf("%s not supported on %s", playerName, r.goos)
	}

	args := slices.Clone(r.getArgs(player))
	args = append(args, url)

	return exec.Command(playerName, args...), nil
}

// getArgs returns the appropriate args for the current platform
func (r *PlayerRegistry) getArgs(player PlayerDefinition) []string {
	switch r.goos {
	case "darwin":
		if len(player.ArgsDarwin) > 0 {
			return player.ArgsDarwin
		}
	case "linux":
		if len(player.ArgsLinux) > 0 {
			return player.ArgsLinux
		}
	case "windows":
		if len(player.ArgsWindows) > 0 {
			return player.ArgsWindows
		}
	}

	return player.Args
}

// IsPlayerAvailable checks if a player is installed
func (r *PlayerRegistry) IsPlayerAvailable(playerName string) bool {
	_, err := exec.LookPath(playerName)
	return err == nil
}

// FindAvailablePlayer finds the first available player from a list
func (r *PlayerRegistry) FindAvailablePlayer(players []string) string {
	for _, player := range players {
		if r.IsPlayerAvailable(player) {
			return player
		}
	}
	return ""
}
