// Package services contains the application services of the folio client:
// the Session Manager (AuthService) and the resource stores built on top of
// the HTTP client.
package services

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/client/client"
	"github.com/dmitrijs2005/folio/internal/client/models"
	"github.com/dmitrijs2005/folio/internal/client/session"
	"github.com/dmitrijs2005/folio/internal/logging"
)

const (
	MsgNoToken            = "Authentication failed: No token received"
	MsgNoUser             = "Authentication failed: No user received"
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgForgotFailed       = "Failed to send reset instructions"
	MsgResetFailed        = "Failed to reset password"
	MsgForgotSent         = "If the email is registered, reset instructions have been sent"
	MsgResetDone          = "Password has been reset"
)

// AuthService is the Session Manager.
//
// Contract:
//   - Initialize: rehydrate the session from durable storage, purging it when
//     incomplete, corrupt or expired.
//   - Login/Register: drop any session, authenticate, and adopt the new one
//     only when the reply carries both token and user.
//   - Logout: drop the session; idempotent.
//   - IsAuthenticated: true only when memory and durable storage both hold a
//     token.
//   - ForgotPassword/ResetPassword: never touch the session.
type AuthService interface {
	Initialize(ctx context.Context) bool
	Login(ctx context.Context, email, password string) bool
	Register(ctx context.Context, email, password, name string) bool
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	ForgotPassword(ctx context.Context, email string) (string, bool)
	ResetPassword(ctx context.Context, token, password string) (string, bool)

	User() *models.User
	Loading() bool
	Error() string
	ClearError()
}

type authService struct {
	state
	client client.Client
	store  *session.Store
	log    logging.Logger
}

func NewAuthService(c client.Client, store *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, store: store, log: log}
}

func (a *authService) Initialize(ctx context.Context) bool {
	ok, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "stored session discarded", "error", err)
	}
	if ok {
		a.log.Info(ctx, "session restored", "user_id", a.store.User().ID)
	}
	return ok
}

func (a *authService) Login(ctx context.Context, email, password string) bool {
	return a.authenticate(ctx, MsgLoginFailed, func() (client.Result[models.AuthPayload], error) {
		return a.client.Login(ctx, email, password)
	})
}

func (a *authService) Register(ctx context.Context, email, password, name string) bool {
	return a.authenticate(ctx, MsgRegistrationFailed, func() (client.Result[models.AuthPayload], error) {
		return a.client.Register(ctx, email, password, name)
	})
}

func (a *authService) authenticate(ctx context.Context, fallback string, call func() (client.Result[models.AuthPayload], error)) bool {
	a.begin()

	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn(ctx, "cannot clear previous session", "error", err)
	}

	res, err := call()
	if err != nil {
		a.finish(displayAuthError(res, fallback))
		return false
	}
	if res.Data.Token == "" {
		a.log.Warn(ctx, "auth reply without token")
		a.finish(MsgNoToken)
		return false
	}
	if res.Data.User == nil {
		a.log.Warn(ctx, "auth reply without user")
		a.finish(MsgNoUser)
		return false
	}

	if err := a.store.Save(ctx, res.Data.Token, res.Data.User); err != nil {
		a.log.Error(ctx, "cannot persist session", "error", err)
		a.finish(fallback)
		return false
	}

	a.log.Info(ctx, "logged in", "user_id", res.Data.User.ID)
	a.finish("")
	return true
}

// displayAuthError keeps the server's text for every status, 401 included:
// a rejected login is a credentials problem, not an expired session.
func displayAuthError(res client.Result[models.AuthPayload], fallback string) string {
	if res.Error != "" {
		return res.Error
	}
	return fallback
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "cannot clear session", "error", err)
		return
	}
	a.log.Info(ctx, "logged out")
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	if a.store.Token() == "" {
		return false
	}
	stored, err := a.store.StoredToken(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot read stored token", "error", err)
		return false
	}
	return stored != ""
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (string, bool) {
	a.begin()
	res, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		msg := displayError(res, MsgForgotFailed)
		a.finish(msg)
		return msg, false
	}
	a.finish("")
	return messageOr(res.Message, MsgForgotSent), true
}

func (a *authService) ResetPassword(ctx context.Context, token, password string) (string, bool) {
	a.begin()
	res, err := a.client.ResetPassword(ctx, token, password)
	if err != nil {
		msg := displayError(res, MsgResetFailed)
		a.finish(msg)
		return msg, false
	}
	a.finish("")
	return messageOr(res.Message, MsgResetDone), true
}

func (a *authService) User() *models.User {
	return a.store.User()
}

func messageOr(msg, fallback string) string {
	if msg == "" || msg == client.DefaultMessage {
		return fallback
	}
	return msg
}
