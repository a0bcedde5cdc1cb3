// Package store defines persistence interfaces and the error taxonomy shared
// by all store implementations. Concrete implementations live under
// internal/platform.
package store
