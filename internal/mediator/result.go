package mediator

// Unit is the payload type for operations that succeed without a value
// (create, edit, delete). A successful Result[Unit] is still a success;
// the HTTP layer renders it as an empty 200 body.
type Unit struct{}

// Result is the envelope returned by every use-case handler. Exactly one of
// the success or failure states holds; NotFound is only meaningful on
// failure. A success carrying a zero value is distinct from a failure.
type Result[T any] struct {
	value    T
	ok       bool
	message  string
	notFound bool
}

// Ok returns a successful Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail returns a failed Result with the given message.
func Fail[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// NotFound returns a failed Result marked as a not-found outcome.
func NotFound[T any]() Result[T] {
	return Result[T]{notFound: true}
}

// IsSuccess reports whether the Result is in the success state.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsNotFound reports whether the Result is a not-found failure.
func (r Result[T]) IsNotFound() bool { return !r.ok && r.notFound }

// Value returns the wrapped value. Only meaningful when IsSuccess is true.
func (r Result[T]) Value() T { return r.value }

// Message returns the failure message. Empty on success.
func (r Result[T]) Message() string { return r.message }
