// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/distro/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a command result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.NewDistroResult:
		return r.renderNewDistro(v)
	case *types.GenConfigResult:
		return r.renderGenConfig(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderNewDistro(res *types.NewDistroResult) error {
	w := &errWriter{w: r.output}
	if res.DryRun {
		w.printf("Dry run: would create distro %s in %s\n", res.Profile, res.Path)
	} else {
		w.printf("Created distro %s in %s\n", res.Profile, res.Path)
	}
	w.printf("  core branch:    %s\n", res.CoreBranch)
	w.printf("  drupal version: %s\n", res.DrupalVersion)
	w.printf("  git url:        %s\n", res.GitURL)
	w.printf("  repository:     %s\n", repositoryState(res))
	w.printf("Files:\n")
	for _, f := range res.FilesCreated {
		w.printf("  %s\n", f)
	}
	return w.err
}

func (r *Renderer) renderGenConfig(res *types.GenConfigResult) error {
	if len(res.FilesWritten) == 0 {
		_, err := fmt.Fprintln(r.output, res.ConfigContent)
		return err
	}
	w := &errWriter{w: r.output}
	for _, f := range res.FilesWritten {
		w.printf("Wrote config to %s\n", f)
	}
	return w.err
}

func repositoryState(res *types.NewDistroResult) string {
	switch {
	case res.Repository && res.DryRun:
		return "would be initialized"
	case res.Repository:
		return "initialized"
	default:
		return "skipped"
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// errWriter keeps the first write error so a sequence of prints can be
// checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
