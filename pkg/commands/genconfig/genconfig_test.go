package genconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/distro/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		result, err := GenConfig(GenConfigOptions{})
		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)

		for _, line := range strings.Split(result.ConfigContent, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
				(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
				continue
			}
			assert.Fail(t, "Found uncommented configuration line", "Line: %s", line)
		}
		assert.Contains(t, result.ConfigContent, "[releases]")
		assert.Contains(t, result.ConfigContent, "[vcs]")
	})

	t.Run("write to explicit path", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "nested", "config.toml")

		result, err := GenConfig(GenConfigOptions{Path: target, Write: true})
		require.NoError(t, err)
		assert.Equal(t, []string{target}, result.FilesWritten)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, result.ConfigContent, string(data))

		// the generated file loads cleanly and yields the defaults
		cfg, err := config.Load(target)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("existing file is kept", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(target, []byte("# mine\n"), 0644))

		result, err := GenConfig(GenConfigOptions{Path: target, Write: true})
		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(data))
	})

	t.Run("default path follows XDG_CONFIG_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)

		result, err := GenConfig(GenConfigOptions{Write: true})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(home, "distro", "config.toml")}, result.FilesWritten)
	})
}
