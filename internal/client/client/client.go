package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/folio/internal/client/models"
)

// Client is the transport contract of the portfolio service.
type Client interface {
	Login(ctx context.Context, email, password string) (Result[models.AuthPayload], error)
	Register(ctx context.Context, email, password, name string) (Result[models.AuthPayload], error)
	ForgotPassword(ctx context.Context, email string) (Result[json.RawMessage], error)
	ResetPassword(ctx context.Context, token, password string) (Result[json.RawMessage], error)

	GetProfile(ctx context.Context) (Result[models.Profile], error)
	UpdateProfile(ctx context.Context, in models.ProfileInput) (Result[models.Profile], error)

	GetProjects(ctx context.Context) (Result[[]models.Project], error)
	AddProject(ctx context.Context, in models.ProjectInput) (Result[models.Project], error)
	UpdateProject(ctx context.Context, id int64, in models.ProjectInput) (Result[models.Project], error)
	DeleteProject(ctx context.Context, id int64) (Result[json.RawMessage], error)

	GetPortfolio(ctx context.Context, userID int64) (Result[models.Portfolio], error)
	SendContactMessage(ctx context.Context, userID int64, msg models.ContactMessage) (Result[json.RawMessage], error)

	UploadURL(filename string) string
}

// TokenSource reads the bearer token from durable storage. An empty token
// means none is stored.
type TokenSource interface {
	StoredToken(ctx context.Context) (string, error)
}

// UnauthorizedHandler is notified of every 401 reply, whichever call
// received it.
type UnauthorizedHandler interface {
	HandleUnauthorized(ctx context.Context)
}
