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
	Login(ctx context.Context) error
	AddUser(ctx context.Context) error
	RemoveUser(ctx context.Context) error
	Profile(ctx context.Context, id string) error
	Count(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop over the credential store.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//   - help           show available commands
//   - login          check a user name and password
//   - adduser        store a new credential record
//   - rmuser         remove a credential record
//   - profile <id>   look up a user profile by numeric id
//   - count          number of stored records
//   - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(promptFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: login, adduser, rmuser, profile <id>, count, exit")

		case "login":
			_ = a.Login(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "rmuser":
			_ = a.RemoveUser(ctx)

		case "profile":
			if len(args) == 0 {
				printlnFn("Usage: profile <id>")
				continue
			}
			_ = a.Profile(ctx, args[0])

		case "count":
			_ = a.Count(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
