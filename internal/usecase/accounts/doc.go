// Package accounts contains the use-case handlers for authentication:
// login, register, and current-user lookup.
package accounts
