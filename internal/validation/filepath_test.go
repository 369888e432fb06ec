package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFilePathValidator(t *testing.T) {
	v := NewFilePathValidator()
	if v.MaxPathLength != 4096 {
		t.Errorf("Expected MaxPathLength to be 4096, got %d", v.MaxPathLength)
	}
	if len(v.AllowedBaseDirs) == 0 {
		t.Error("Expected AllowedBaseDirs to be populated with secure defaults")
	}

	if len(NewPermissiveFilePathValidator().AllowedBaseDirs) != 0 {
		t.Error("Expected AllowedBaseDirs to be empty for permissive mode")
	}
}

func TestValidateAndSanitize(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	v := NewFilePathValidator()
	tmp := t.TempDir()

	tests := []struct {
		name        string
		input       string
		want        string
		shouldError bool
		errorMsg    string
	}{
		{name: "empty path", input: "", shouldError: true, errorMsg: "cannot be empty"},
		{name: "null byte", input: filepath.Join(tmp, "a\x00b"), shouldError: true, errorMsg: "null bytes"},
		{name: "control character", input: filepath.Join(tmp, "a\x01b"), shouldError: true, errorMsg: "control characters"},
		{name: "traversal", input: tmp + "/../etc/passwd", shouldError: true, errorMsg: "traversal"},
		{name: "invalid tilde", input: "~root/.bashrc", shouldError: true, errorMsg: "tilde"},
		{name: "outside allowed dirs", input: "/etc/tubegram.log", shouldError: true, errorMsg: "not within allowed"},
		{name: "temp dir", input: filepath.Join(tmp, "tubegram.log"), want: filepath.Join(tmp, "tubegram.log")},
		{name: "home expansion", input: "~/.tubegram/tubegram.log", want: filepath.Join(home, ".tubegram", "tubegram.log")},
		{name: "too long", input: "/" + strings.Repeat("a", 5000), shouldError: true, errorMsg: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateAndSanitize(tt.input)
			if tt.shouldError {
				if err == nil {
					t.Fatalf("ValidateAndSanitize(%q) expected error, got %q", tt.input, got)
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errorMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAndSanitize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateAndSanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateAndSanitize_RelativePathsBecomeAbsolute(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	got, err := NewPermissiveFilePathValidator().ValidateAndSanitize("logs/tubegram.log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, filepath.Join("logs", "tubegram.log")) {
		t.Errorf("got %q, want absolute path ending in logs/tubegram.log", got)
	}
}

func TestValidateBaseDirs_SiblingPrefix(t *testing.T) {
	base := t.TempDir()
	v := &FilePathValidator{AllowedBaseDirs: []string{base}}

	if err := v.validateBaseDirs(base + "-evil/file"); err == nil {
		t.Error("a sibling directory sharing the prefix must not pass")
	}
	if err := v.validateBaseDirs(filepath.Join(base, "..name", "file")); err != nil {
		t.Errorf("names starting with dots inside the base should pass: %v", err)
	}
}

func TestValidateFile(t *testing.T) {
	v := NewPermissiveFilePathValidator()
	dir := t.TempDir()

	if _, err := v.ValidateFile(dir); err == nil {
		t.Error("ValidateFile should reject a directory")
	}

	file := filepath.Join(dir, "tubegram.log")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := v.ValidateFile(file)
	if err != nil {
		t.Fatalf("ValidateFile(existing file) error: %v", err)
	}
	if got != file {
		t.Errorf("ValidateFile = %q, want %q", got, file)
	}

	if _, err := v.ValidateFile(filepath.Join(dir, "missing.log")); err != nil {
		t.Errorf("ValidateFile should accept a file that does not exist yet: %v", err)
	}
}
