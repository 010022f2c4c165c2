package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/distro/pkg/filesystem"
	"github.com/arthur-debert/distro/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // target filesystem is afero's MemMapFs
	EnvIsolated                  // target filesystem is the OS, under a temp dir
)

// TestEnvironment isolates a test from the user's home and configuration.
type TestEnvironment struct {
	HomeDir    string
	ConfigHome string
	StateHome  string
	// WorkDir is where distros are created. Exists on FS.
	WorkDir string

	FS   types.FS
	Type EnvType
}

// NewTestEnvironment creates a new test environment. HOME and the XDG
// directories always live on disk because git and the logger use them.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	env := &TestEnvironment{
		HomeDir:    home,
		ConfigHome: filepath.Join(home, ".config"),
		StateHome:  filepath.Join(home, ".local", "state"),
		Type:       envType,
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.WorkDir = "/virtual/work"
	default:
		env.FS = filesystem.NewOS()
		env.WorkDir = t.TempDir()
	}
	if err := env.FS.MkdirAll(env.WorkDir, 0755); err != nil {
		t.Fatalf("Failed to create work dir: %v", err)
	}

	return env
}

// Path joins elem onto the work directory.
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.WorkDir}, elem...)...)
}

// ReadFile returns the content of a file on the environment's filesystem.
func (env *TestEnvironment) ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists on the environment's filesystem.
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}
