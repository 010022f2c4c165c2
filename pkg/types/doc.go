// Package types defines the core types and interfaces shared by the distro
// packages: the filesystem capability the materializer writes through and the
// result structures returned to the CLI renderers.
package types
