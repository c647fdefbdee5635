// Package session owns the authentication session of the client: the bearer
// token and user identity, mirrored between memory and durable storage.
//
// Store is the only writer of the session keys. ExpiryHandler plugs into the
// HTTP client and tears the session down on any 401 reply, and Navigator
// stands in for the user agent location that the teardown redirects.
package session
