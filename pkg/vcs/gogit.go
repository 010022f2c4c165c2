package vcs

import (
	"context"
	"time"

	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGit creates repositories in process with go-git.
type GoGit struct {
	Options Options
}

// Init implements Initializer.
func (g *GoGit) Init(ctx context.Context, dir, remoteURL string) error {
	logger := logging.GetLogger("vcs").With().Str("dir", dir).Logger()
	opts := g.Options.withDefaults()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return vcsError(err, "init", dir)
	}
	logger.Debug().Msg("Initialized repository")

	if err := ctx.Err(); err != nil {
		return vcsError(err, "init", dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return vcsError(err, "open worktree", dir)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return vcsError(err, "stage files", dir)
	}

	hash, err := wt.Commit(opts.CommitMessage, &git.CommitOptions{
		Author: signature(opts),
	})
	if err != nil {
		return vcsError(err, "commit", dir)
	}
	logger.Debug().Str("commit", hash.String()).Msg("Created commit")

	if _, err := repo.CreateRemote(&config.RemoteConfig{
		Name: opts.Remote,
		URLs: []string{remoteURL},
	}); err != nil {
		return vcsError(err, "add remote", dir).WithDetail("url", remoteURL)
	}

	logger.Info().Str("remote", opts.Remote).Str("url", remoteURL).Msg("Repository ready")
	return nil
}

// signature picks the commit author from opts, then the user's global git
// configuration, then a fixed fallback.
func signature(opts Options) *object.Signature {
	name, email := opts.AuthorName, opts.AuthorEmail
	if name == "" || email == "" {
		if global, err := config.LoadConfig(config.GlobalScope); err == nil {
			if name == "" {
				name = global.User.Name
			}
			if email == "" {
				email = global.User.Email
			}
		}
	}
	if name == "" {
		name = FallbackAuthorName
	}
	if email == "" {
		email = FallbackAuthorEmail
	}
	return &object.Signature{Name: name, Email: email, When: time.Now()}
}

func vcsError(err error, op, dir string) *errors.DistroError {
	return errors.Wrapf(err, errors.ErrVCS, "git %s failed in %s", op, dir).
		WithDetail("path", dir)
}
