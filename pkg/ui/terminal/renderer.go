// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/distro/pkg/types"
	"github.com/arthur-debert/distro/pkg/ui/styles"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a command result with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.NewDistroResult:
		_, err := io.WriteString(r.output, newDistro(v))
		return err
	case *types.GenConfigResult:
		_, err := io.WriteString(r.output, genConfig(v))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func newDistro(res *types.NewDistroResult) string {
	var b strings.Builder

	title := fmt.Sprintf("Created distro %s in %s", res.Profile, res.Path)
	if res.DryRun {
		title = fmt.Sprintf("Dry run: would create distro %s in %s", res.Profile, res.Path)
	}
	b.WriteString(styles.Get("Header").Render(title))
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(styles.Get("Label").Render(label))
		b.WriteString(styles.Get("Value").Render(value))
		b.WriteString("\n")
	}
	field("core branch", res.CoreBranch)
	field("drupal version", res.DrupalVersion)
	field("git url", res.GitURL)

	switch {
	case res.Repository && res.DryRun:
		field("repository", styles.Get("Muted").Render("would be initialized"))
	case res.Repository:
		field("repository", styles.Get("Success").Render("initialized"))
	default:
		field("repository", styles.Get("Muted").Render("skipped"))
	}

	b.WriteString("\n")
	for _, f := range res.FilesCreated {
		b.WriteString(styles.Get("FilePath").Render(f))
		b.WriteString("\n")
	}
	return b.String()
}

func genConfig(res *types.GenConfigResult) string {
	if len(res.FilesWritten) == 0 {
		return res.ConfigContent + "\n"
	}
	var b strings.Builder
	for _, f := range res.FilesWritten {
		b.WriteString(styles.Get("Success").Render("Wrote config to "))
		b.WriteString(styles.Get("FilePath").Render(f))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", styles.Get("Error").Render("Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
