// Package client is the single chokepoint for every call to the portfolio
// service.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) covering auth,
//     profile, projects and the public portfolio endpoints.
//  2. A concrete HTTP implementation (see HTTPClient) that resolves the base
//     URL once, picks JSON or multipart encoding per call, attaches the
//     bearer token from durable storage to every endpoint except the four
//     unauthenticated auth endpoints, and routes every reply through one
//     place.
//  3. Normalize, which folds the two reply shapes the service uses (the
//     {success, data, message, error} envelope and the bare legacy payload)
//     into one Result.
//  4. The Classify* functions, which map transport and HTTP failures onto a
//     closed ErrorKind taxonomy with a display message and status code.
//
// # Error Handling
//
// Every call returns (Result[T], error). The Result is always either a
// success or a failure; the error is non-nil exactly when the Result is a
// failure and is then an *APIError, so callers may inspect either one.
// A 401 from any endpoint additionally invokes the configured
// UnauthorizedHandler before the call returns.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Overlapping calls are neither
// serialized nor coalesced. All operations accept context.Context.
package client
