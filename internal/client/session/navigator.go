package session

import (
	"sync"

	"github.com/dmitrijs2005/folio/internal/common"
)

var publicPages = map[string]struct{}{
	common.LoginPath:          {},
	common.RegisterPath:       {},
	common.ForgotPasswordPath: {},
	common.ResetPasswordPath:  {},
}

// IsPublicPage reports whether path can be shown without a session.
func IsPublicPage(path string) bool {
	_, ok := publicPages[path]
	return ok
}

// Navigator holds the current location of the user agent.
type Navigator struct {
	mu        sync.Mutex
	path      string
	redirects int
}

func NewNavigator(start string) *Navigator {
	if start == "" {
		start = common.LoginPath
	}
	return &Navigator{path: start}
}

func (n *Navigator) Path() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

// Navigate moves to path on behalf of the user.
func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
}

// RedirectToLogin sends the user agent to the login page unless it already
// shows a public page. It reports whether a redirect happened.
func (n *Navigator) RedirectToLogin() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if IsPublicPage(n.path) {
		return false
	}
	n.path = common.LoginPath
	n.redirects++
	return true
}

// Redirects counts forced redirects since creation.
func (n *Navigator) Redirects() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.redirects
}
