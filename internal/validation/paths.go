package validation

import (
	"os"
	"path/filepath"
)

// PathHandler resolves the files tubegram reads and writes, falling back
// to the default locations when the user gives none.
type PathHandler struct {
	validator *FilePathValidator
}

func NewSecurePathHandler() *PathHandler {
	return &PathHandler{validator: NewFilePathValidator()}
}

// NewPermissivePathHandler accepts any location the user names explicitly.
func NewPermissivePathHandler() *PathHandler {
	return &PathHandler{validator: NewPermissiveFilePathValidator()}
}

// LogPath returns a validated log file path, ~/.tubegram/tubegram.log by default.
func (ph *PathHandler) LogPath(userPath string) (string, error) {
	if userPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		userPath = filepath.Join(homeDir, ".tubegram", "tubegram.log")
	}
	return ph.validator.ValidateFile(userPath)
}

// ConfigPath returns a validated config file path, ~/.config/tubegram/config.toml by default.
func (ph *PathHandler) ConfigPath(userPath string) (string, error) {
	if userPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		userPath = filepath.Join(homeDir, ".config", "tubegram", "config.toml")
	}
	return ph.validator.ValidateFile(userPath)
}
