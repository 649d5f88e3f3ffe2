package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Token(ctx context.Context) error
	Status(ctx context.Context) error
	Reset(ctx context.Context) error
	Services(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Admin(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Appointo CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help           show available commands
//	  - services       list the services catalog
//	  - status, token  inspect the persisted session
//	  - reset          wipe all local data and sign out
//	  - exit | quit    leave the program
//
//	Not logged in:
//	  - register       create an account and sign in
//	  - login          authenticate
//
//	Logged in:
//	  - whoami         show the signed-in account
//	  - dashboard      show bookings and profile
//	  - admin          list all accounts (admins only)
//	  - login          switch to another account
//	  - logout         end the session
//
// dashboard and admin refuse callers without the required login or role.
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "appointo %s> ", statusFn())
		line, err := readRawLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, dashboard, admin, services, status, token, login, logout, reset, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, register, services, status, token, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "token":
			_ = a.Token(ctx)

		case "status":
			_ = a.Status(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "services":
			_ = a.Services(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
