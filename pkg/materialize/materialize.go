// Package materialize writes a distro onto a filesystem from a template root.
//
// The work is a fixed chain of steps run in order; the first failing step
// stops the chain and whatever was already written stays on disk.
package materialize

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/arthur-debert/distro/pkg/manifest"
	"github.com/arthur-debert/distro/pkg/substitution"
	"github.com/arthur-debert/distro/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

const (
	dirPerm  = fs.FileMode(0755)
	filePerm = fs.FileMode(0644)
)

// Plan describes one materialization.
type Plan struct {
	Target      string
	Profile     string
	CoreVersion string
	Mapping     *substitution.Mapping
}

// CoreBranch returns the template branch the plan draws from.
func (p Plan) CoreBranch() string {
	return manifest.CoreBranch(p.CoreVersion)
}

// Result lists what a materialization left in the target, as slash
// separated paths relative to it, and the steps that completed.
type Result struct {
	Files []string
	Steps []string
}

func (r *Result) add(rel string) {
	r.Files = append(r.Files, rel)
}

func (r *Result) replace(old, new string) {
	for i, f := range r.Files {
		if f == old {
			r.Files[i] = new
			return
		}
	}
}

func (r *Result) dropUnder(dir string) {
	kept := r.Files[:0]
	for _, f := range r.Files {
		if len(f) > len(dir) && f[:len(dir)+1] == dir+"/" {
			continue
		}
		kept = append(kept, f)
	}
	r.Files = kept
}

// Step is a single link of the materialization chain.
type Step interface {
	Name() string
	Run(m *Materializer, plan Plan, result *Result) error
}

// Materializer copies templates from Source into FS.
type Materializer struct {
	FS     types.FS
	Source fs.FS
	logger zerolog.Logger

	sfs        *synthfs.SynthFS
	pipelineFS filesystem.FullFileSystem
}

// New creates a Materializer writing to target from source.
func New(target types.FS, source fs.FS) *Materializer {
	return &Materializer{
		FS:         target,
		Source:     source,
		logger:     logging.GetLogger("materialize"),
		sfs:        synthfs.New(),
		pipelineFS: synthfs.NewPathAwareFileSystem(filesystem.NewOSFileSystem("/"), "/").WithAbsolutePaths(),
	}
}

// Steps returns the chain Materialize runs, in order.
func Steps() []Step {
	return []Step{
		CreateDirs{},
		CopyManifest{},
		RenameBuildMakefile{},
		RenameStubs{},
		RemoveStubDir{},
	}
}

// Materialize runs every step of the chain against plan.
func (m *Materializer) Materialize(plan Plan) (*Result, error) {
	done := logging.LogOperationStart(m.logger, "materialize")
	defer done()

	ctx := context.Background()
	result := &Result{}
	for _, step := range Steps() {
		if err := m.runStep(ctx, step, plan, result); err != nil {
			return result, err
		}
	}

	m.logger.Info().
		Str("target", plan.Target).
		Int("files", len(result.Files)).
		Msg("Materialized distro")
	return result, nil
}

// Preview returns the files Materialize would produce without touching
// any filesystem.
func (m *Materializer) Preview(plan Plan) []string {
	return manifest.Produced(plan.CoreVersion, plan.Profile)
}

func (m *Materializer) abs(plan Plan, rel string) string {
	return filepath.Join(plan.Target, filepath.FromSlash(rel))
}

func fsError(err error, op, p string) error {
	return errors.Wrapf(err, errors.ErrFilesystem, "cannot %s %s", op, p).
		WithDetail("path", p)
}

// CreateDirs creates the target, its core branch directory and the behat
// bootstrap directory.
type CreateDirs struct{}

// Name implements Step.
func (CreateDirs) Name() string { return "create-dirs" }

// Run implements Step.
func (CreateDirs) Run(m *Materializer, plan Plan, _ *Result) error {
	dirs := []string{
		plan.Target,
		m.abs(plan, plan.CoreBranch()),
		m.abs(plan, manifest.BootstrapDir),
	}
	for _, dir := range dirs {
		if err := m.FS.MkdirAll(dir, dirPerm); err != nil {
			return fsError(err, "create directory", dir)
		}
		m.logger.Debug().Str("dir", dir).Msg("Created directory")
	}
	return nil
}

// CopyManifest writes every manifest file with its tokens substituted.
type CopyManifest struct{}

// Name implements Step.
func (CopyManifest) Name() string { return "copy-manifest" }

// Run implements Step.
func (CopyManifest) Run(m *Materializer, plan Plan, result *Result) error {
	for _, rel := range manifest.For(plan.CoreVersion) {
		data, err := fs.ReadFile(m.Source, rel)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return errors.Wrapf(err, errors.ErrTemplateNotFound, "template file not found: %s", rel).
					WithDetail("path", rel)
			}
			return fsError(err, "read template", rel)
		}

		dest := m.abs(plan, rel)
		if dir := filepath.Dir(dest); dir != "." {
			if err := m.FS.MkdirAll(dir, dirPerm); err != nil {
				return fsError(err, "create directory", dir)
			}
		}
		if err := m.FS.WriteFile(dest, plan.Mapping.ApplyBytes(data), filePerm); err != nil {
			return fsError(err, "write", dest)
		}

		result.add(rel)
		m.logger.Trace().Str("file", rel).Msg("Copied template")
	}
	return nil
}

// RenameBuildMakefile renames build-example.make after the profile.
type RenameBuildMakefile struct{}

// Name implements Step.
func (RenameBuildMakefile) Name() string { return "rename-build-makefile" }

// Run implements Step.
func (RenameBuildMakefile) Run(m *Materializer, plan Plan, result *Result) error {
	newRel := manifest.ProfileMakefile(plan.Profile)
	from := m.abs(plan, manifest.BuildMakefile)
	to := m.abs(plan, newRel)
	if err := m.FS.Rename(from, to); err != nil {
		return fsError(err, "rename", from)
	}
	result.replace(manifest.BuildMakefile, newRel)
	return nil
}

// RenameStubs moves every stub file of the core branch out of the stub
// subtree, renamed after the profile. Children are handled before their
// parents.
type RenameStubs struct{}

// Name implements Step.
func (RenameStubs) Name() string { return "rename-stubs" }

// Run implements Step.
func (RenameStubs) Run(m *Materializer, plan Plan, result *Result) error {
	return m.walkStubs(plan, result, ".")
}

func (m *Materializer) walkStubs(plan Plan, result *Result, relDir string) error {
	branch := plan.CoreBranch()
	dir := m.abs(plan, path.Join(branch, relDir))

	entries, err := m.FS.ReadDir(dir)
	if err != nil {
		return fsError(err, "read directory", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if err := m.walkStubs(plan, result, path.Join(relDir, entry.Name())); err != nil {
				return err
			}
		}
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		// afero renames the entry in place, so its name must be read first
		base := entry.Name()
		name, ok := manifest.StubTarget(base, plan.Profile)
		if !ok {
			m.logger.Debug().Str("file", base).Msg("Leaving non-stub entry")
			continue
		}

		newRel := path.Join(relDir, name)
		from := filepath.Join(dir, base)
		to := m.abs(plan, newRel)
		if relDir != "." {
			if err := m.FS.MkdirAll(filepath.Dir(to), dirPerm); err != nil {
				return fsError(err, "create directory", filepath.Dir(to))
			}
		}
		if err := m.FS.Rename(from, to); err != nil {
			return fsError(err, "rename", from)
		}

		result.replace(path.Join(branch, relDir, base), newRel)
		m.logger.Debug().Str("from", from).Str("to", to).Msg("Renamed stub")
	}
	return nil
}

// RemoveStubDir deletes the core branch directory and anything left in it.
type RemoveStubDir struct{}

// Name implements Step.
func (RemoveStubDir) Name() string { return "remove-stub-dir" }

// Run implements Step.
func (RemoveStubDir) Run(m *Materializer, plan Plan, result *Result) error {
	dir := m.abs(plan, plan.CoreBranch())
	if err := m.FS.RemoveAll(dir); err != nil {
		return fsError(err, "remove", dir)
	}
	result.dropUnder(plan.CoreBranch())
	return nil
}
