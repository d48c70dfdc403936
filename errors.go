package paystack

import (
	"errors"
	"fmt"
)

// ErrNoSecretKey is returned by NewClient when no secret key was supplied
// via WithSecretKey and the PAYSTACK_SECRET_KEY environment variable is
// unset. It is raised before any network activity.
var ErrNoSecretKey = errors.New("paystack: no secret key provided; pass WithSecretKey or set PAYSTACK_SECRET_KEY")

// NetworkError wraps a transport-level failure (DNS, connection refused,
// timeout) encountered during the single request attempt. The call is never
// retried internally.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("paystack: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UnsupportedMethodError reports an HTTP verb outside the fixed table of
// seven supported methods. It indicates a programming error, not a remote
// failure.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("paystack: unsupported HTTP method %q", e.Method)
}

// ValidationError reports a request rejected client-side before any network
// call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("paystack: %s: %s", e.Field, e.Message)
}

// DecodeError is returned in strict decoding mode when a response body's
// data field does not match the expected model. In the default lenient mode
// the mismatch is logged and the envelope's Data is left nil instead.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("paystack: decoding response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
