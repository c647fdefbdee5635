package client

// Result is the uniform outcome of a call: a success carrying Data and an
// optional Message, or a failure carrying Error and, when the service
// answered, its HTTP status in Code (0 means absent).
type Result[T any] struct {
	OK      bool
	Data    T
	Message string

	Error string
	Code  int
	Kind  ErrorKind

	err *APIError
}

func Success[T any](data T, message string) Result[T] {
	return Result[T]{OK: true, Data: data, Message: message}
}

func Failure[T any](apiErr *APIError) Result[T] {
	if apiErr == nil {
		apiErr = &APIError{Kind: KindProtocol, Message: MsgUnexpected}
	}
	return Result[T]{
		Error: apiErr.Message,
		Code:  apiErr.Code,
		Kind:  apiErr.Kind,
		err:   apiErr,
	}
}

// Err returns the classified error of a failure and nil for a success.
func (r Result[T]) Err() error {
	if r.OK || r.err == nil {
		return nil
	}
	return r.err
}

// HasCode reports whether the failure came with an HTTP status.
func (r Result[T]) HasCode() bool {
	return r.Code != 0
}

// settle returns the result together with its rejection, keeping the nil
// error a true nil interface on success.
func settle[T any](r Result[T]) (Result[T], error) {
	if r.OK {
		return r, nil
	}
	return r, r.err
}
