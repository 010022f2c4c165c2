package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/distro/pkg/config"
	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/arthur-debert/distro/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Path is where the file is written. Defaults to the user config path.
	Path  string
	Write bool
}

// GenConfig outputs or writes the commented default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	target := opts.Path
	if target == "" {
		target = config.UserConfigPath()
	}

	if _, err := os.Stat(target); err == nil {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFilesystem, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := os.WriteFile(target, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFilesystem, "failed to write config to %s", target).
			WithDetail("path", target)
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
