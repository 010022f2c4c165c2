package distro

import (
	"embed"
	"io/fs"
)

//go:embed topics
var embeddedTopics embed.FS

// Topics returns the help topic files shipped with the binary.
func Topics() fs.FS {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
