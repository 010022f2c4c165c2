package vcs

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/logging"
)

// Binary drives an external git executable.
type Binary struct {
	Path    string
	Options Options
}

// Init implements Initializer.
func (b *Binary) Init(ctx context.Context, dir, remoteURL string) error {
	opts := b.Options.withDefaults()

	var identity []string
	if opts.AuthorName != "" {
		identity = append(identity, "-c", "user.name="+opts.AuthorName)
	}
	if opts.AuthorEmail != "" {
		identity = append(identity, "-c", "user.email="+opts.AuthorEmail)
	}

	commands := [][]string{
		{"init"},
		{"add", "-A"},
		append(identity, "commit", "-m", opts.CommitMessage),
		{"remote", "add", opts.Remote, remoteURL},
	}
	for _, args := range commands {
		if err := b.run(ctx, dir, args); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binary) run(ctx context.Context, dir string, args []string) error {
	logger := logging.GetLogger("vcs")
	logger.Debug().Str("binary", b.Path).Strs("args", args).Str("dir", dir).Msg("Running git")

	cmd := exec.CommandContext(ctx, b.Path, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrVCS, "%s %s failed", b.Path, strings.Join(args, " ")).
			WithDetail("path", dir).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}
