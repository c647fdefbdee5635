// Package common contains shared constants and sentinel errors used across
// folio components.
package common

// Durable storage keys owned by the session layer.
const (
	TokenStorageKey = "token"
	UserStorageKey  = "user"
)

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the opaque token in the authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags every outbound request for log correlation.
const RequestIDHeaderName = "X-Request-ID"

// Unauthenticated entry points of the user agent.
const (
	LoginPath          = "/login"
	RegisterPath       = "/register"
	ForgotPasswordPath = "/forgot-password"
	ResetPasswordPath  = "/reset-password"
)
