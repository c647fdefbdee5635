package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 10 << 20
)

// Endpoints of the portfolio service, relative to the base URL.
const (
	PathLogin          = "/user/login"
	PathSignup         = "/user/signup"
	PathForgotPassword = "/user/forgot-password"
	PathResetPassword  = "/user/reset-password"
	PathProfile        = "/user/profile"
	PathProjects       = "/user/projects"
	PathPortfolio      = "/portfolio"
	PathContact        = "/contact"
	PathUploads        = "/uploads"
)

// unauthenticated endpoints never carry the bearer token, even a stale one.
var unauthenticated = map[string]struct{}{
	PathLogin:          {},
	PathSignup:         {},
	PathForgotPassword: {},
	PathResetPassword:  {},
}

func isUnauthenticatedEndpoint(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	_, ok := unauthenticated[path]
	return ok
}

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	limiter        *rate.Limiter
	log            logging.Logger
	requestID      func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (its Timeout is kept).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *HTTPClient) { c.onUnauthorized = h }
}

// WithRateLimit throttles outbound calls; rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient resolves baseURL once; every endpoint path is appended to it.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	c := &HTTPClient{
		baseURL:   strings.TrimRight(u.String(), "/"),
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       logging.Nop(),
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved base URL without a trailing slash.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// UploadURL returns the public URL of an uploaded file, or "" for no file.
func (c *HTTPClient) UploadURL(filename string) string {
	if filename == "" {
		return ""
	}
	return c.baseURL + PathUploads + "/" + url.PathEscape(filename)
}

// do dispatches one call and routes the outcome: 2xx replies through
// Normalize, everything else through the Classify functions. A 401 reaches
// the UnauthorizedHandler before do returns.
func (c *HTTPClient) do(ctx context.Context, method, path string, body requestBody) Result[json.RawMessage] {
	reqID := c.requestID()
	log := c.log.With("method", method, "path", path, "request_id", reqID)

	req, err := c.newRequest(ctx, method, path, body, reqID)
	if err != nil {
		return c.fail(ctx, log, ClassifySetup(err))
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.fail(ctx, log, ClassifySetup(fmt.Errorf("request throttled: %w", err)))
		}
	}

	log.Debug(ctx, "api request", "auth", req.Header.Get(common.AuthorizationHeaderName) != "")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(ctx, log, ClassifyTransport(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.fail(ctx, log, ClassifyTransport(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(ctx, log, ClassifyResponse(resp.StatusCode, data))
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "json") {
		log.Warn(ctx, "api response is not json", "content_type", ct)
	}

	res := Normalize(data)
	if !res.OK {
		log.Warn(ctx, "api request rejected", "status", resp.StatusCode, "kind", res.Kind.String())
		return res
	}
	log.Debug(ctx, "api response", "status", resp.StatusCode)
	return res
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body requestBody, reqID string) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		var err error
		reader, contentType, err = body.encode()
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if !isUnauthenticatedEndpoint(path) && c.tokens != nil {
		token, err := c.tokens.StoredToken(ctx)
		if err != nil {
			c.log.Warn(ctx, "cannot read stored token", "error", err)
		} else if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}
	return req, nil
}

func (c *HTTPClient) fail(ctx context.Context, log logging.Logger, apiErr *APIError) Result[json.RawMessage] {
	log.Warn(ctx, "api request failed", "kind", apiErr.Kind.String(), "code", apiErr.Code, "error", apiErr.Message)

	if apiErr.Code == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized.HandleUnauthorized(ctx)
	}
	return Failure[json.RawMessage](apiErr)
}

// decode turns a normalized result into a typed one. Data that does not fit
// T is a protocol failure.
func decode[T any](res Result[json.RawMessage]) (Result[T], error) {
	if !res.OK {
		return settle(Failure[T](res.err))
	}

	var v T
	if len(res.Data) > 0 && string(res.Data) != "null" {
		if err := json.Unmarshal(res.Data, &v); err != nil {
			return settle(Failure[T](&APIError{Kind: KindProtocol, Message: MsgUnprocessable, Err: err}))
		}
	}
	return settle(Success(v, res.Message))
}

var errEmptyID = errors.New("missing resource id")
