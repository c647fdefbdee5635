package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/folio/internal/client/client"
)

// Display messages shared by the stores.
const (
	MsgNotAuthenticated = "Not authenticated. Please log in again."
	MsgPayloadTooLarge  = "File is too large. Please choose a smaller image."
)

// Authenticator gates resource stores on a live session.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// state is the loading flag and display error every store exposes.
type state struct {
	mu      sync.RWMutex
	loading bool
	err     string
}

func (s *state) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

func (s *state) finish(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = errMsg
}

func (s *state) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *state) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ClearError drops the display error and leaves everything else alone.
func (s *state) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// displayError picks the text a store shows for a failed call.
func displayError[T any](res client.Result[T], fallback string) string {
	switch res.Code {
	case http.StatusUnauthorized:
		return MsgNotAuthenticated
	case http.StatusRequestEntityTooLarge:
		return MsgPayloadTooLarge
	}
	if res.Error != "" {
		return res.Error
	}
	return fallback
}
