package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// Handler is the unit of business logic bound to exactly one request type.
// The error return carries infrastructure and authentication outcomes
// (cancellation, store failures, bad credentials); business outcomes ride in
// the Result envelope.
type Handler[Req any, Res any] interface {
	Handle(ctx context.Context, req Req) (Result[Res], error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc[Req any, Res any] func(ctx context.Context, req Req) (Result[Res], error)

// Handle implements Handler.
func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Result[Res], error) {
	return f(ctx, req)
}

// Dispatcher routes each request to the single handler registered for its
// type. Registration happens once during startup wiring; after that the
// registry is read-only, so Send is safe for concurrent use.
type Dispatcher struct {
	handlers map[reflect.Type]func(ctx context.Context, req any) (any, error)
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[reflect.Type]func(ctx context.Context, req any) (any, error)),
	}
}

// Register binds h as the handler for requests of type Req. Registering a
// second handler for the same request type is a configuration error and is
// rejected so that startup wiring can fail fast.
func Register[Req any, Res any](d *Dispatcher, h Handler[Req, Res]) error {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if _, exists := d.handlers[reqType]; exists {
		return fmt.Errorf("handler already registered for request type %s", reqType)
	}

	d.handlers[reqType] = func(ctx context.Context, req any) (any, error) {
		return h.Handle(ctx, req.(Req))
	}
	return nil
}

// Send dispatches req to its registered handler, propagating ctx unchanged
// so that caller cancellation reaches the handler. If ctx is already done
// the handler is never invoked.
func Send[Req any, Res any](ctx context.Context, d *Dispatcher, req Req) (Result[Res], error) {
	var zero Result[Res]

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	h, ok := d.handlers[reqType]
	if !ok {
		return zero, fmt.Errorf("no handler registered for request type %s", reqType)
	}

	res, err := h(ctx, req)
	if err != nil {
		return zero, err
	}

	result, ok := res.(Result[Res])
	if !ok {
		return zero, fmt.Errorf("handler for %s returned %T, want %T", reqType, res, zero)
	}
	return result, nil
}
