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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	CompleteTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	ListProjects(ctx context.Context) error
	AddProject(ctx context.Context) error
	CompleteProject(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed and otherwise ignored;
// the loop keeps running so one failed call never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("tb %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: (t)asks, addtask, done <id>, deltask <id>, (p)rojects, addproject, doneproject <id>, delproject <id>, me, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "me":
			report(a.Me(ctx))

		case "t", "tasks":
			report(a.ListTasks(ctx))

		case "addtask":
			report(a.AddTask(ctx))

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			report(a.CompleteTask(ctx, args[0]))

		case "deltask":
			if len(args) == 0 {
				printlnFn("Usage: deltask <id>")
				continue
			}
			report(a.DeleteTask(ctx, args[0]))

		case "p", "projects":
			report(a.ListProjects(ctx))

		case "addproject":
			report(a.AddProject(ctx))

		case "doneproject":
			if len(args) == 0 {
				printlnFn("Usage: doneproject <id>")
				continue
			}
			report(a.CompleteProject(ctx, args[0]))

		case "delproject":
			if len(args) == 0 {
				printlnFn("Usage: delproject <id>")
				continue
			}
			report(a.DeleteProject(ctx, args[0]))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
