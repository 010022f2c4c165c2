package testutil

import (
	"io/fs"
	"testing/fstest"

	"github.com/arthur-debert/distro/pkg/manifest"
)

// TemplateTree returns a template root holding every manifest file of the
// given core versions. Each file's content names the file and carries the
// profile and version tokens.
func TemplateTree(coreVersions ...string) fstest.MapFS {
	tree := fstest.MapFS{}
	for _, v := range coreVersions {
		tree[manifest.CoreBranch(v)] = &fstest.MapFile{Mode: fs.ModeDir | 0755}
		for _, f := range manifest.For(v) {
			tree[f] = &fstest.MapFile{Data: []byte(f + ": {{ profile }} {{ drupal.version }}\n")}
		}
	}
	return tree
}
