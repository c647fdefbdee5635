package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   ErrorKind
		msg    string
	}{
		{"401 with error member", http.StatusUnauthorized, `{"error":"Invalid token"}`, KindAuth, "Invalid token"},
		{"413 with message member", http.StatusRequestEntityTooLarge, `{"message":"File too large"}`, KindPayloadTooLarge, "File too large"},
		{"error wins over message", http.StatusBadRequest, `{"error":"bad email","message":"ignored"}`, KindValidation, "bad email"},
		{"empty error falls back to message", http.StatusBadRequest, `{"error":"","message":"Name required"}`, KindValidation, "Name required"},
		{"envelope failure", http.StatusConflict, `{"success":false,"error":"Email taken"}`, KindValidation, "Email taken"},
		{"json string body", http.StatusNotFound, `"not found"`, KindValidation, "not found"},
		{"plain text body", http.StatusInternalServerError, "database is down\n", KindServer, "database is down"},
		{"html body", http.StatusBadGateway, "<html><body>Bad gateway</body></html>", KindServer, MsgUnexpected},
		{"empty body", http.StatusServiceUnavailable, "", KindServer, MsgUnexpected},
		{"object without text", http.StatusBadRequest, `{"code":12}`, KindValidation, MsgUnexpected},
		{"json number", http.StatusBadRequest, `42`, KindValidation, MsgUnexpected},
		{"redirect status", http.StatusFound, "", KindProtocol, MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ClassifyResponse(tt.status, []byte(tt.body))
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.msg, err.Message)
			assert.Equal(t, tt.status, err.Code)
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
		msg  string
	}{
		{"deadline", fmt.Errorf("do: %w", context.DeadlineExceeded), KindTimeout, MsgTimeout},
		{"net timeout", timeoutErr{}, KindTimeout, MsgTimeout},
		{"dial refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, KindNetwork, MsgNetwork},
		{"dns", &net.DNSError{Err: "no such host", Name: "api.invalid"}, KindNetwork, MsgNetwork},
		{"reset", fmt.Errorf("read: %w", syscall.ECONNRESET), KindNetwork, MsgNetwork},
		{"other", errors.New("unexpected EOF"), KindProtocol, MsgUnprocessable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ClassifyTransport(tt.err)
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.msg, err.Message)
			assert.Zero(t, err.Code)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassifySetup(t *testing.T) {
	err := ClassifySetup(errors.New("upload has no content"))
	assert.Equal(t, KindSetup, err.Kind)
	assert.Equal(t, "upload has no content", err.Message)
	assert.Zero(t, err.Code)

	assert.Equal(t, MsgUnexpected, ClassifySetup(nil).Message)
}

func TestAPIError_Helpers(t *testing.T) {
	wrapped := fmt.Errorf("profile: %w", ClassifyResponse(http.StatusUnauthorized, nil))

	assert.Equal(t, KindAuth, KindOf(wrapped))
	assert.Equal(t, http.StatusUnauthorized, CodeOf(wrapped))
	assert.True(t, IsUnauthorized(wrapped))

	plain := errors.New("boom")
	assert.Zero(t, KindOf(plain))
	assert.Zero(t, CodeOf(plain))
	assert.False(t, IsUnauthorized(plain))

	assert.Equal(t, "auth error (HTTP 401): An unexpected error occurred", ClassifyResponse(401, nil).Error())
	assert.Equal(t, "timeout error: "+MsgTimeout, ClassifyTransport(context.DeadlineExceeded).Error())
}
