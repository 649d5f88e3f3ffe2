// Package cli provides the interactive Appointo command-line client.
//
// It wires configuration, local session storage, the session service and an
// interactive REPL. On start the persisted session (if any) is restored with
// a single CurrentUser call; afterwards the in-memory user only changes when
// a login, register, logout or reset call succeeds.
//
// Commands:
//   - login / register / logout / reset
//   - whoami, token, status
//   - services (public), dashboard (signed in), admin (admin role)
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
