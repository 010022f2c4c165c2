package materialize

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/filesystem"
	"github.com/arthur-debert/distro/pkg/manifest"
	"github.com/arthur-debert/distro/pkg/substitution"
	"github.com/arthur-debert/distro/pkg/templates"
	"github.com/arthur-debert/distro/pkg/testutil"
	"github.com/arthur-debert/distro/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapping(profile, version string) *substitution.Mapping {
	return substitution.New(map[substitution.Token]string{
		substitution.Profile:       profile,
		substitution.DrupalVersion: version,
	})
}

func sorted(files []string) []string {
	out := append([]string(nil), files...)
	sort.Strings(out)
	return out
}

func readString(t *testing.T, fsys types.FS, p string) string {
	t.Helper()
	data, err := fsys.ReadFile(p)
	require.NoError(t, err)
	return string(data)
}

func TestMaterializeCoreSeven(t *testing.T) {
	target := filepath.Join(t.TempDir(), "acme")
	fsys := filesystem.NewOS()
	plan := Plan{Target: target, Profile: "acme", CoreVersion: "7", Mapping: mapping("acme", "7.59")}

	m := New(fsys, testutil.TemplateTree("7"))
	result, err := m.Materialize(plan)
	require.NoError(t, err)

	assert.Equal(t, sorted(m.Preview(plan)), sorted(result.Files))

	for _, name := range []string{"acme.info", "acme.install", "acme.profile"} {
		_, err := fsys.Stat(filepath.Join(target, name))
		assert.NoError(t, err, name)
	}
	assert.Equal(t, "7.x/example.info: acme 7.59\n", readString(t, fsys, filepath.Join(target, "acme.info")))

	_, err = fsys.Stat(filepath.Join(target, "7.x"))
	assert.True(t, os.IsNotExist(err), "stub directory is removed")

	_, err = fsys.Stat(filepath.Join(target, manifest.BuildMakefile))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "build-example.make: acme 7.59\n", readString(t, fsys, filepath.Join(target, "build-acme.make")))

	info, err := fsys.Stat(filepath.Join(target, "build.xml"))
	require.NoError(t, err)
	assert.Equal(t, filePerm, info.Mode().Perm())

	info, err = fsys.Stat(filepath.Join(target, manifest.BootstrapDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMaterializeCoreEight(t *testing.T) {
	fsys := filesystem.NewMemory()
	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "8", Mapping: mapping("acme", "8.1.0")}

	result, err := New(fsys, testutil.TemplateTree("8")).Materialize(plan)
	require.NoError(t, err)

	assert.Len(t, result.Files, len(manifest.Base))
	assert.Contains(t, result.Files, "build-acme.make")
	assert.Equal(t, ".gitignore: acme 8.1.0\n", readString(t, fsys, "/work/acme/.gitignore"))

	_, err = fsys.Stat("/work/acme/8.x")
	assert.True(t, os.IsNotExist(err))
}

func TestMaterializeBundledTemplates(t *testing.T) {
	fsys := filesystem.NewMemory()
	m := mapping("acme", "7.59")
	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7", Mapping: m}

	result, err := New(fsys, templates.Bundled()).Materialize(plan)
	require.NoError(t, err)
	assert.Equal(t, sorted(manifest.Produced("7", "acme")), sorted(result.Files))

	for _, f := range result.Files {
		assert.NotContains(t, readString(t, fsys, filepath.Join("/work/acme", f)), "{{ profile }}", f)
	}
}

func TestMaterializeIsIdempotentOnExistingDirs(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/work/acme/test/features/bootstrap", 0755))
	require.NoError(t, fsys.MkdirAll("/work/acme/7.x", 0755))

	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7", Mapping: mapping("acme", "7.59")}
	_, err := New(fsys, testutil.TemplateTree("7")).Materialize(plan)
	require.NoError(t, err)
}

func TestMaterializeMissingTemplate(t *testing.T) {
	src := testutil.TemplateTree("7")
	delete(src, "behat.yml")

	fsys := filesystem.NewMemory()
	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7", Mapping: mapping("acme", "7.59")}

	result, err := New(fsys, src).Materialize(plan)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
	assert.Contains(t, err.Error(), "behat.yml")
	assert.Equal(t, "behat.yml", errors.GetErrorDetails(err)["path"])

	// earlier writes stay, later steps never ran
	assert.Equal(t, []string{".editorconfig", ".gitignore", ".travis.yml", "build.xml", "build.properties.dist"}, result.Files)
	_, err = fsys.Stat("/work/acme/build.xml")
	assert.NoError(t, err)
	_, err = fsys.Stat("/work/acme/7.x")
	assert.NoError(t, err, "stub directory survives an aborted run")
	assert.Equal(t, []string{"create-dirs"}, result.Steps)
}

func TestMaterializeMemoryReportsRenamedStubs(t *testing.T) {
	fsys := filesystem.NewMemory()
	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7", Mapping: mapping("acme", "7.59")}

	m := New(fsys, testutil.TemplateTree("7"))
	result, err := m.Materialize(plan)
	require.NoError(t, err)

	for _, name := range []string{"acme.info", "acme.install", "acme.profile"} {
		assert.Contains(t, result.Files, name)
		_, err := fsys.Stat(filepath.Join("/work/acme", name))
		assert.NoError(t, err, name)
	}
	for _, f := range result.Files {
		assert.NotContains(t, f, "7.x/", f)
	}
	assert.Equal(t, sorted(m.Preview(plan)), sorted(result.Files))
}

func TestMaterializeRunsEveryStep(t *testing.T) {
	fsys := filesystem.NewMemory()
	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7", Mapping: mapping("acme", "7.59")}

	result, err := New(fsys, testutil.TemplateTree("7")).Materialize(plan)
	require.NoError(t, err)

	var names []string
	for _, step := range Steps() {
		names = append(names, step.Name())
	}
	assert.Equal(t, names, result.Steps)
}

func TestRenameStubsLeavesNonMatchingEntries(t *testing.T) {
	fsys := filesystem.NewMemory()
	files := map[string]string{
		"/work/acme/7.x/example.info":        "info",
		"/work/acme/7.x/README.md":           "readme",
		"/work/acme/7.x/example.PHP":         "upper",
		"/work/acme/7.x/example.tar.gz":      "archive",
		"/work/acme/7.x/my_example.info":     "prefixed",
		"/work/acme/7.x/modules/example.inc": "nested",
	}
	for p, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, fsys.WriteFile(p, []byte(content), 0644))
	}
	require.NoError(t, fsys.MkdirAll("/work/acme/7.x/example.d", 0755))

	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7"}
	result := &Result{Files: []string{"7.x/example.info"}}
	m := New(fsys, fstest.MapFS{})

	require.NoError(t, RenameStubs{}.Run(m, plan, result))

	assert.Equal(t, "info", readString(t, fsys, "/work/acme/acme.info"))
	assert.Equal(t, "nested", readString(t, fsys, "/work/acme/modules/acme.inc"))
	assert.Equal(t, []string{"acme.info"}, result.Files)

	for _, left := range []string{"README.md", "example.PHP", "example.tar.gz", "my_example.info", "example.d"} {
		_, err := fsys.Stat(filepath.Join("/work/acme/7.x", left))
		assert.NoError(t, err, left)
	}

	require.NoError(t, RemoveStubDir{}.Run(m, plan, result))
	_, err := fsys.Stat("/work/acme/7.x")
	assert.True(t, os.IsNotExist(err))
}

func TestRenameBuildMakefileMissing(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/work/acme", 0755))

	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7"}
	err := RenameBuildMakefile{}.Run(New(fsys, fstest.MapFS{}), plan, &Result{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFilesystem))
	assert.Contains(t, err.Error(), manifest.BuildMakefile)
}

func TestPreviewDoesNotWrite(t *testing.T) {
	fsys := filesystem.NewMemory()
	plan := Plan{Target: "/work/acme", Profile: "acme", CoreVersion: "7"}

	files := New(fsys, testutil.TemplateTree("7")).Preview(plan)
	assert.Contains(t, files, "acme.profile")
	assert.Contains(t, files, "build-acme.make")

	_, err := fsys.Stat("/work/acme")
	assert.True(t, os.IsNotExist(err))
}
