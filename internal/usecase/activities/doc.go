// Package activities contains the use-case handlers for the Activity
// resource: list, details, create, edit, delete. Each handler is stateless
// and bound to exactly one request type via the mediator.
package activities
