package validation

import (
	"path/filepath"
	"testing"
)

func TestPathHandler_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ph := NewSecurePathHandler()

	logPath, err := ph.LogPath("")
	if err != nil {
		t.Fatalf("LogPath(\"\") error: %v", err)
	}
	if want := filepath.Join(home, ".tubegram", "tubegram.log"); logPath != want {
		t.Errorf("LogPath(\"\") = %s, want %s", logPath, want)
	}

	configPath, err := ph.ConfigPath("")
	if err != nil {
		t.Fatalf("ConfigPath(\"\") error: %v", err)
	}
	if want := filepath.Join(home, ".config", "tubegram", "config.toml"); configPath != want {
		t.Errorf("ConfigPath(\"\") = %s, want %s", configPath, want)
	}
}

func TestPathHandler_SecureRejectsForeignDirs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := NewSecurePathHandler().LogPath("/etc/tubegram.log"); err == nil {
		t.Error("secure handler should reject a log file outside tubegram's directories")
	}
}

func TestPathHandler_PermissiveAcceptsExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "custom.log")

	got, err := NewPermissivePathHandler().LogPath(want)
	if err != nil {
		t.Fatalf("LogPath error: %v", err)
	}
	if got != want {
		t.Errorf("LogPath = %s, want %s", got, want)
	}

	if _, err := NewPermissivePathHandler().ConfigPath(dir + "/../x.toml"); err == nil {
		t.Error("traversal must be rejected even in permissive mode")
	}
}
