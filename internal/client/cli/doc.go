// Package cli provides the interactive folio command-line client.
//
// Commands play the role of pages: login, register, forgot and reset are
// public, profile and projects need a session and send the user to the login
// page without one, portfolio and contact are public views of another user.
// A 401 from any call tears the session down and moves the REPL back to the
// login page.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
