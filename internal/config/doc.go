// Package config defines the application configuration structures and the
// loader that populates them from environment variables and optional
// config files.
package config
