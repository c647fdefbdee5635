package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed taxonomy of call failures.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuth
	KindPayloadTooLarge
	KindServer
	KindTimeout
	KindNetwork
	KindProtocol
	KindSetup
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindPayloadTooLarge:
		return "payload_too_large"
	case KindServer:
		return "server"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindProtocol:
		return "protocol"
	case KindSetup:
		return "setup"
	default:
		return "unknown"
	}
}

// Display messages for failures that carry no server-provided text.
const (
	MsgTimeout       = "Request timeout. Please try again."
	MsgNetwork       = "Network error. Please check your connection."
	MsgUnprocessable = "Response received but could not be processed. Please try again."
	MsgUnexpected    = "An unexpected error occurred"
	MsgRequestFailed = "API request failed"
)

// APIError is a classified call failure. Code is the HTTP status when the
// server answered and 0 otherwise.
type APIError struct {
	Kind    ErrorKind
	Message string
	Code    int
	Err     error
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error (HTTP %d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a classified error, or 0 for anything else.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// CodeOf returns the HTTP status of a classified error, or 0.
func CodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool {
	return CodeOf(err) == http.StatusUnauthorized
}

// kindForStatus maps an HTTP status of a failed reply to its kind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusRequestEntityTooLarge:
		return KindPayloadTooLarge
	case status >= 400 && status < 500:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindProtocol
	}
}
