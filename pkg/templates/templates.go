// Package templates ships the Drupal distro template tree inside the binary.
//
// The tree holds one directory per supported core branch (7.x, 8.x) next to
// the files listed in the manifest. Tokens inside the files are replaced
// during materialization; see package substitution.
package templates

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:drupal
var bundled embed.FS

// Bundled returns the template tree compiled into the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "drupal")
	if err != nil {
		// the embed directive guarantees the directory
		panic(err)
	}
	return sub
}

// Open returns the template tree rooted at dir, or the bundled tree when
// dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return Bundled()
	}
	return os.DirFS(dir)
}

// HasBranch reports whether the template root contains a directory for branch.
func HasBranch(root fs.FS, branch string) bool {
	if !fs.ValidPath(branch) {
		return false
	}
	info, err := fs.Stat(root, branch)
	return err == nil && info.IsDir()
}
