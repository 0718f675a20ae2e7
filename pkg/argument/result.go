// SPDX-License-Identifier: MPL-2.0

package argument

// Result is the outcome of a conversion: a value on success, a message on
// failure. The zero value is a failure with an empty message.
type Result struct {
	value     any
	message   string
	succeeded bool
}

// Success returns a successful Result carrying v.
func Success(v any) Result {
	return Result{value: v, succeeded: true}
}

// Failure returns a failed Result carrying msg.
func Failure(msg string) Result {
	return Result{message: msg}
}

// Succeeded reports whether the conversion produced a value.
func (r Result) Succeeded() bool { return r.succeeded }

// Value returns the converted value, or nil for a failure.
func (r Result) Value() any { return r.value }

// Message returns the failure message, or "" for a success.
func (r Result) Message() string { return r.message }

// Err returns nil for a success and a *ConversionError otherwise.
func (r Result) Err() error {
	if r.succeeded {
		return nil
	}
	return &ConversionError{Message: r.message}
}

// ResultValue returns the value of r as a T. The boolean is false when r
// failed or holds a value of another type.
func ResultValue[T any](r Result) (T, bool) {
	var zero T
	if !r.succeeded {
		return zero, false
	}
	v, ok := r.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
