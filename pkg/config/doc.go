// Package config handles configuration management for distro.
// It layers the embedded defaults, an optional TOML user file and
// DISTRO_* environment variables using koanf.
package config
