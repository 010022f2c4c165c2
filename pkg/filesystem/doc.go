// Package filesystem provides filesystem implementations for distro.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used by the CLI and an afero-backed one used by tests
// and by callers that want to materialize into memory.
package filesystem
