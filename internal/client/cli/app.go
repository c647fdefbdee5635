package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/folio/internal/client/client"
	"github.com/dmitrijs2005/folio/internal/client/config"
	"github.com/dmitrijs2005/folio/internal/client/repositories"
	"github.com/dmitrijs2005/folio/internal/client/services"
	"github.com/dmitrijs2005/folio/internal/client/session"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/filex"
	"github.com/dmitrijs2005/folio/internal/logging"
)

// Pages the REPL can show besides the public auth pages.
const (
	HomePage      = "/"
	ProfilePage   = "/profile"
	ProjectsPage  = "/projects"
	PortfolioPage = "/portfolio"
)

type App struct {
	auth      services.AuthService
	profile   services.ProfileStore
	projects  services.ProjectStore
	portfolio services.PortfolioStore
	nav       *session.Navigator
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
	closer io.Closer
}

// NewApp opens durable storage and wires the HTTP client, the session and
// the stores.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	origin, err := cfg.Origin()
	if err != nil {
		return nil, err
	}

	dsn, err := filex.EnsureParentDir(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	repos, err := repositories.InitDatabase(ctx, dsn, origin)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(repos.DB, repos.Metadata, log)
	nav := session.NewNavigator(common.LoginPath)

	apiClient, err := client.NewHTTPClient(cfg.APIBaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RequestsPerSecond, cfg.RequestBurst),
		client.WithTokenSource(store),
		client.WithUnauthorizedHandler(session.NewExpiryHandler(store, nav, log)),
		client.WithLogger(log),
	)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	app := newApp(apiClient, store, nav, log, bufio.NewReader(os.Stdin), os.Stdout)
	app.closer = repos
	return app, nil
}

func newApp(c client.Client, store *session.Store, nav *session.Navigator, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	auth := services.NewAuthService(c, store, log)
	return &App{
		auth:      auth,
		profile:   services.NewProfileStore(c, auth, log),
		projects:  services.NewProjectStore(c, auth, log),
		portfolio: services.NewPortfolioStore(c, log),
		nav:       nav,
		log:       log,
		reader:    reader,
		out:       out,
	}
}

// Run restores the previous session and serves commands until the user
// leaves or input ends.
func (a *App) Run(ctx context.Context) {
	if a.closer != nil {
		defer a.closer.Close()
	}

	printlnFn("Welcome to folio (type 'help' for commands)")
	if a.auth.Initialize(ctx) {
		a.nav.Navigate(HomePage)
		printlnFn("Welcome back,", a.auth.User().Email)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	s := a.nav.Path()
	if u := a.auth.User(); u != nil {
		s = u.Email + " " + s
	}
	return s
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.IsAuthenticated(ctx)
}

// enter shows a page that needs a session. Without one the user agent is
// sent to the login page instead.
func (a *App) enter(ctx context.Context, page string) bool {
	a.nav.Navigate(page)
	if a.auth.IsAuthenticated(ctx) {
		return true
	}
	a.nav.RedirectToLogin()
	printlnFn("Please log in first.")
	return false
}
