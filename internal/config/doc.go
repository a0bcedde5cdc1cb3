// Package config defines the application configuration structure and loading
// logic. Configuration comes from environment variables (GATHER_ prefix) and
// an optional config.yaml, validated at load time so misconfiguration stops
// the process before it serves a single request.
package config
