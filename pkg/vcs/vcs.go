// Package vcs puts a freshly materialized distro under version control.
//
// Both implementations perform the same sequence: init, stage everything,
// commit, and register the remote. A failure stops the sequence and is
// reported as an errors.ErrVCS error; nothing already done is undone.
package vcs

import (
	"context"
)

// Defaults for Options fields left empty.
const (
	DefaultRemote        = "origin"
	DefaultCommitMessage = "first commit"
	FallbackAuthorName   = "distro"
	FallbackAuthorEmail  = "distro@localhost"
)

// Initializer creates a repository in dir whose remote points at remoteURL.
type Initializer interface {
	Init(ctx context.Context, dir, remoteURL string) error
}

// Options tune the repository that gets created.
type Options struct {
	Remote        string
	CommitMessage string
	AuthorName    string
	AuthorEmail   string
}

func (o Options) withDefaults() Options {
	if o.Remote == "" {
		o.Remote = DefaultRemote
	}
	if o.CommitMessage == "" {
		o.CommitMessage = DefaultCommitMessage
	}
	return o
}

// New returns a Binary initializer when binary is set and a GoGit one
// otherwise.
func New(binary string, opts Options) Initializer {
	if binary != "" {
		return &Binary{Path: binary, Options: opts}
	}
	return &GoGit{Options: opts}
}
