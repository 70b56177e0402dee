package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	report(err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Projects(ctx context.Context) error
	Project(ctx context.Context, args []string) error
	NewProject(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Generate(ctx context.Context, args []string) error

	Plan(ctx context.Context, args []string) error
	Epics(ctx context.Context, args []string) error
	Stories(ctx context.Context, args []string) error
	Tasks(ctx context.Context, args []string) error

	Sprints(ctx context.Context, args []string) error
	Sprint(ctx context.Context, args []string) error
	NewSprint(ctx context.Context, args []string) error

	Export(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: whoami, projects, project <id>, newproject, upload <id> <file>, " +
		"generate <id> [provider], plan <id> [yaml], epics <id>, stories <id> [epic], tasks <id> [story], " +
		"sprints <id>, sprint <id>, newsprint <id>, export <id> pdf|csv|jira [s3], logout, exit"
)

// privateCommands need a credential; the rest (help, register, login, exit)
// work without one.
var privateCommands = map[string]bool{
	"logout": true, "whoami": true, "projects": true, "ls": true, "project": true,
	"newproject": true, "upload": true, "generate": true, "plan": true, "epics": true,
	"stories": true, "tasks": true, "sprints": true, "sprint": true, "newsprint": true,
	"export": true,
}

// runREPL starts a simple read–eval–print loop for the sprintpilot CLI.
//
// It reads a line from in, parses the first token as the command and the
// rest as arguments, and dispatches to methods on 'a'. The loop exits on EOF
// or when the user types "exit" or "quit".
//
// Commands other than help/register/login/exit need a credential; without
// one the user is told to log in and nothing is sent. Errors returned by
// command handlers are passed to a.report and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sp %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if privateCommands[cmd] && !a.isLoggedIn() {
			a.report(common.ErrorNotLoggedIn)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			a.report(a.Register(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "logout":
			a.report(a.Logout(ctx))
		case "whoami":
			a.report(a.WhoAmI(ctx))

		case "projects", "ls":
			a.report(a.Projects(ctx))
		case "project":
			a.report(a.Project(ctx, args))
		case "newproject":
			a.report(a.NewProject(ctx))
		case "upload":
			a.report(a.Upload(ctx, args))
		case "generate":
			a.report(a.Generate(ctx, args))

		case "plan":
			a.report(a.Plan(ctx, args))
		case "epics":
			a.report(a.Epics(ctx, args))
		case "stories":
			a.report(a.Stories(ctx, args))
		case "tasks":
			a.report(a.Tasks(ctx, args))

		case "sprints":
			a.report(a.Sprints(ctx, args))
		case "sprint":
			a.report(a.Sprint(ctx, args))
		case "newsprint":
			a.report(a.NewSprint(ctx, args))

		case "export":
			a.report(a.Export(ctx, args))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// last line had no trailing newline
			return
		}
	}
}
