// Package newdistro implements the 'new' command: it resolves the user's
// options, materializes the template tree and initializes the repository.
package newdistro

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/distro/pkg/config"
	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/filesystem"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/arthur-debert/distro/pkg/materialize"
	"github.com/arthur-debert/distro/pkg/resolver"
	"github.com/arthur-debert/distro/pkg/templates"
	"github.com/arthur-debert/distro/pkg/types"
	"github.com/arthur-debert/distro/pkg/vcs"
)

// NewDistroOptions defines the options for the NewDistro command.
type NewDistroOptions struct {
	// Request holds the profile and its optional overrides.
	Request resolver.Request
	// Directory is where the distro is created. Defaults to ./<profile>.
	Directory string
	// NoRepo skips repository initialization.
	NoRepo bool
	// DryRun resolves everything but writes nothing.
	DryRun bool

	// Templates is the template root. Nil uses the bundled tree.
	Templates fs.FS
	// Lookup finds the latest Drupal release. Nil queries drupal.org.
	Lookup resolver.VersionLookup
	// Defaults supplies the configured core version and git URL template.
	Defaults config.Defaults
	// FileSystem receives the materialized files. Nil uses the OS.
	FileSystem types.FS
	// VCS initializes the repository. Nil uses go-git.
	VCS vcs.Initializer
}

// NewDistro creates a distro according to opts.
//
// When the files are in place but the repository step fails, the result is
// returned together with the error.
func NewDistro(ctx context.Context, opts NewDistroOptions) (*types.NewDistroResult, error) {
	log := logging.GetLogger("commands.newdistro")
	log.Debug().Str("command", "NewDistro").Str("profile", opts.Request.Profile).Msg("Executing command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	source := opts.Templates
	if source == nil {
		source = templates.Bundled()
	}

	// 1. Validate and apply defaults, no network yet
	r := resolver.New(source, opts.Lookup, opts.Defaults)
	prepared, err := r.Prepare(opts.Request)
	if err != nil {
		return nil, err
	}

	// 2. Refuse to scaffold over existing content
	dir := opts.Directory
	if dir == "" {
		dir = "." + string(filepath.Separator) + prepared.Profile
	}
	if err := checkTarget(fsys, dir); err != nil {
		return nil, err
	}

	// 3. Latest release for the branch
	version, err := r.LatestVersion(ctx, prepared.CoreBranch)
	if err != nil {
		return nil, err
	}
	resolution := prepared.WithVersion(version)
	log.Info().
		Str("branch", resolution.CoreBranch).
		Str("version", resolution.DrupalVersion).
		Msg("Found latest Drupal release")

	plan := materialize.Plan{
		Target:      dir,
		Profile:     resolution.Profile,
		CoreVersion: resolution.CoreVersion,
		Mapping:     resolution.Mapping,
	}
	result := &types.NewDistroResult{
		Profile:       resolution.Profile,
		Path:          dir,
		CoreBranch:    resolution.CoreBranch,
		DrupalVersion: resolution.DrupalVersion,
		GitURL:        resolution.GitURL,
		DryRun:        opts.DryRun,
	}

	m := materialize.New(fsys, source)

	// 4. Dry run stops before any write
	if opts.DryRun {
		result.FilesCreated = m.Preview(plan)
		result.Repository = !opts.NoRepo
		log.Info().Int("files", len(result.FilesCreated)).Msg("Dry run, nothing written")
		return result, nil
	}

	// 5. Materialize, then version control
	materialized, err := m.Materialize(plan)
	if err != nil {
		return nil, err
	}
	result.FilesCreated = materialized.Files

	if opts.NoRepo {
		return result, nil
	}

	initializer := opts.VCS
	if initializer == nil {
		initializer = vcs.New("", vcs.Options{})
	}
	if err := initializer.Init(ctx, dir, resolution.GitURL); err != nil {
		return result, err
	}
	result.Repository = true
	return result, nil
}

// checkTarget accepts a missing path or an empty directory.
func checkTarget(fsys types.FS, dir string) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot inspect %s", dir).
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists and is not a directory", dir).
			WithDetail("path", dir)
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot read %s", dir).
			WithDetail("path", dir)
	}
	if len(entries) > 0 {
		return errors.Newf(errors.ErrAlreadyExists, "directory %s already exists and is not empty", dir).
			WithDetail("path", dir)
	}
	return nil
}
