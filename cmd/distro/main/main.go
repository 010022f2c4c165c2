package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/distro/cmd/distro"
	"github.com/arthur-debert/distro/pkg/ui/styles"
)

func main() {
	rootCmd := distro.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Get("Error").Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
