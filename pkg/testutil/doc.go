// Package testutil provides utilities for testing distro components.
//
// Key components:
//   - TestEnvironment: isolated HOME and XDG directories plus a target filesystem
//   - ReleaseFeed: an httptest server speaking the release-history XML format
//   - TemplateTree: an in-memory template root built from the manifest
//
// Every test gets its own environment; nothing is shared between tests.
package testutil
