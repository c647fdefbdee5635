package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"syscall"
)

// ClassifyResponse classifies a reply that arrived with a non-2xx status.
// The message is the body's "error" member, else its "message" member, else
// the body itself when it is plain text, else MsgUnexpected.
func ClassifyResponse(status int, body []byte) *APIError {
	return &APIError{
		Kind:    kindForStatus(status),
		Message: responseMessage(body),
		Code:    status,
	}
}

func responseMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return MsgUnexpected
	}

	if json.Valid(trimmed) {
		switch trimmed[0] {
		case '{':
			var members map[string]json.RawMessage
			if err := json.Unmarshal(trimmed, &members); err == nil {
				if truthy(members["error"]) {
					return displayText(members["error"])
				}
				if truthy(members["message"]) {
					return displayText(members["message"])
				}
			}
			return MsgUnexpected
		case '"':
			if s := stringValue(trimmed); s != "" {
				return s
			}
			return MsgUnexpected
		default:
			return MsgUnexpected
		}
	}

	// Proxies answer with HTML error pages; those are not display text.
	if trimmed[0] == '<' {
		return MsgUnexpected
	}
	return strings.TrimSpace(string(trimmed))
}

// ClassifyTransport classifies a failure of a dispatched request for which
// no response arrived.
func ClassifyTransport(err error) *APIError {
	switch {
	case isTimeout(err):
		return &APIError{Kind: KindTimeout, Message: MsgTimeout, Err: err}
	case isConnectionFailure(err):
		return &APIError{Kind: KindNetwork, Message: MsgNetwork, Err: err}
	default:
		return &APIError{Kind: KindProtocol, Message: MsgUnprocessable, Err: err}
	}
}

// ClassifySetup classifies a failure that happened before dispatch.
func ClassifySetup(err error) *APIError {
	msg := MsgUnexpected
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Kind: KindSetup, Message: msg, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionFailure(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr), errors.As(err, &opErr):
		return true
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, syscall.EHOSTUNREACH):
		return true
	default:
		return false
	}
}
