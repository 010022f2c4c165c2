package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/distro/cmd/distro"
	"github.com/arthur-debert/distro/internal/version"
)

func main() {
	rootCmd := distro.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DISTRO",
		Section: "1",
		Source:  "distro " + version.Version,
		Manual:  "distro manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
