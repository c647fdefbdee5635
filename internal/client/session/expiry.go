package session

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/logging"
)

// ExpiryHandler tears the session down when the service answers 401. It is
// installed as the client.UnauthorizedHandler so that every call site gets
// the same treatment.
type ExpiryHandler struct {
	store *Store
	nav   *Navigator
	log   logging.Logger
}

func NewExpiryHandler(store *Store, nav *Navigator, log logging.Logger) *ExpiryHandler {
	if log == nil {
		log = logging.Nop()
	}
	return &ExpiryHandler{store: store, nav: nav, log: log}
}

func (h *ExpiryHandler) HandleUnauthorized(ctx context.Context) {
	// The request context may already be done; the teardown must still run.
	ctx = context.WithoutCancel(ctx)

	if err := h.store.Clear(ctx); err != nil {
		h.log.Error(ctx, "cannot clear expired session", "error", err)
	}
	if h.nav != nil && h.nav.RedirectToLogin() {
		h.log.Info(ctx, "session expired, redirected to login")
	}
}
