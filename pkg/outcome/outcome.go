// Package outcome provides a generic result type for operations whose expected
// failures are part of their contract. Callers inspect the result instead of
// relying on panics for control flow.
package outcome

// Outcome holds exactly one of a value, no content, or an error.
type Outcome[T any] struct {
	value    T
	hasValue bool
	err      error
}

// Success returns a successful outcome carrying v.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, hasValue: true}
}

// NoContent returns a successful outcome without a payload.
func NoContent[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Failure returns a failed outcome classified by err.
// A nil err is a programming error and panics.
func Failure[T any](err error) Outcome[T] {
	if err == nil {
		panic("outcome: Failure called with nil error")
	}
	return Outcome[T]{err: err}
}

// IsSuccess reports whether no error is set.
func (o Outcome[T]) IsSuccess() bool {
	return o.err == nil
}

// HasValue reports whether the outcome carries a payload.
func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

// Value returns the payload, or the zero value for NoContent and Failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the failure classification, or nil on success.
func (o Outcome[T]) Err() error {
	return o.err
}

// Map converts a failed or empty outcome to another payload type.
// Successful payloads are dropped, leaving NoContent.
func Map[T, U any](o Outcome[T]) Outcome[U] {
	if o.err != nil {
		return Outcome[U]{err: o.err}
	}
	return Outcome[U]{}
}
