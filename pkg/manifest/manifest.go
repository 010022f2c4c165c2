// Package manifest describes which template files make up a distro and how
// the stub files are recognised.
package manifest

import (
	"path"
	"regexp"
)

// BuildMakefile is the example build make file renamed after materialization.
const BuildMakefile = "build-example.make"

// StubWord is the basename stem of files that become the profile's own files.
const StubWord = "example"

// BootstrapDir is always created, even though the manifest writes into it.
const BootstrapDir = "test/features/bootstrap"

// LegacyCoreVersion is the core version that ships installation profile stubs.
const LegacyCoreVersion = "7"

var stubPattern = regexp.MustCompile(`^` + regexp.QuoteMeta(StubWord) + `(\.[a-z]+)$`)

// Base lists the files materialized for every core version, in order.
var Base = []string{
	".editorconfig",
	".gitignore",
	".travis.yml",
	"build.xml",
	"build.properties.dist",
	"behat.yml",
	BuildMakefile,
	"test/features/bootstrap/FeatureContext.php",
	"test/features/test.feature",
	"drupal-org-core.make",
	"drupal-org.make",
}

// Extras maps a core version to the additional files it materializes.
// The paths live in the stub subtree of that version's branch.
var Extras = map[string][]string{
	LegacyCoreVersion: {
		"7.x/example.info",
		"7.x/example.install",
		"7.x/example.profile",
	},
}

// CoreBranch returns the branch name for a core version, e.g. "7" -> "7.x".
func CoreBranch(coreVersion string) string {
	return coreVersion + ".x"
}

// For returns the ordered list of relative paths to materialize for coreVersion.
func For(coreVersion string) []string {
	files := make([]string, 0, len(Base)+len(Extras[coreVersion]))
	files = append(files, Base...)
	files = append(files, Extras[coreVersion]...)
	return files
}

// ProfileMakefile is the name BuildMakefile is renamed to.
func ProfileMakefile(profile string) string {
	return "build-" + profile + ".make"
}

// StubExtension reports whether name is a stub file name and returns its
// extension including the leading dot.
func StubExtension(name string) (string, bool) {
	m := stubPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StubTarget returns the name a stub file is renamed to, or false when name
// is not a stub.
func StubTarget(name, profile string) (string, bool) {
	ext, ok := StubExtension(name)
	if !ok {
		return "", false
	}
	return profile + ext, true
}

// Produced returns the relative paths a materialization leaves behind,
// after the build make file and stub renames.
func Produced(coreVersion, profile string) []string {
	branch := CoreBranch(coreVersion)
	var out []string
	for _, f := range For(coreVersion) {
		switch {
		case f == BuildMakefile:
			out = append(out, ProfileMakefile(profile))
		case isUnder(f, branch):
			rel := f[len(branch)+1:]
			target, ok := StubTarget(path.Base(rel), profile)
			if !ok {
				// removed together with the stub subtree
				continue
			}
			out = append(out, path.Join(path.Dir(rel), target))
		default:
			out = append(out, f)
		}
	}
	return out
}

func isUnder(p, dir string) bool {
	return len(p) > len(dir) && p[:len(dir)] == dir && p[len(dir)] == '/'
}
