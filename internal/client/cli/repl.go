package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	RequestReset(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Home(ctx context.Context) error
	Market(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Vault(ctx context.Context, args []string) error
	Message(ctx context.Context, args []string) error
	Info(ctx context.Context, args []string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Anyone:
//	  help, home, market [...], message, events, directory, jobs, info [section]
//	Not logged in:
//	  signup, login, reset, newpass
//	Logged in:
//	  market mine|add|edit|delete, profile [...], vault [...], message post|delete, logout
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hoopa (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, market [search|mine|add|edit|delete], message [post|delete], profile [edit|avatar], vault [upload], events, directory, jobs, info, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, reset, newpass, home, market [search], message, events, directory, jobs, info, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reset":
			_ = a.RequestReset(ctx)

		case "newpass":
			_ = a.ResetPassword(ctx)

		case "home":
			_ = a.Home(ctx)

		case "market":
			_ = a.Market(ctx, args)

		case "profile":
			_ = a.Profile(ctx, args)

		case "vault":
			_ = a.Vault(ctx, args)

		case "message":
			_ = a.Message(ctx, args)

		case "events", "directory", "jobs":
			_ = a.Info(ctx, []string{cmd})

		case "info":
			_ = a.Info(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
