// Package mediator implements the request dispatch core: a registry binding
// each request type to exactly one handler, and the Result envelope every
// handler returns. Handlers receive the caller's context unchanged so that
// client disconnects cancel in-flight work.
package mediator
