package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it; tests
// use a stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error

	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error

	ListProjects(ctx context.Context) error
	AddProject(ctx context.Context) error
	EditProject(ctx context.Context, id int64) error
	DeleteProject(ctx context.Context, id int64) error

	ShowPortfolio(ctx context.Context, userID int64) error
	Contact(ctx context.Context, userID int64) error
}

const (
	helpLoggedOut = "Available commands: login, register, forgot, reset, portfolio <userID>, contact <userID>, exit"
	helpLoggedIn  = "Available commands: whoami, profile, editprofile, projects, addproject, editproject <id>, deleteproject <id>, portfolio <userID>, contact <userID>, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// Handler errors are printed and the loop goes on. The loop ends on EOF or
// on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("folio %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.Whoami(ctx)
		case "forgot":
			cmdErr = a.ForgotPassword(ctx)
		case "reset":
			cmdErr = a.ResetPassword(ctx)

		case "profile":
			cmdErr = a.ShowProfile(ctx)
		case "editprofile":
			cmdErr = a.EditProfile(ctx)

		case "projects", "list":
			cmdErr = a.ListProjects(ctx)
		case "addproject":
			cmdErr = a.AddProject(ctx)
		case "editproject", "deleteproject", "portfolio", "contact":
			id, ok := parseID(args)
			if !ok {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "editproject":
				cmdErr = a.EditProject(ctx, id)
			case "deleteproject":
				cmdErr = a.DeleteProject(ctx, id)
			case "portfolio":
				cmdErr = a.ShowPortfolio(ctx, id)
			case "contact":
				cmdErr = a.Contact(ctx, id)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
		if err != nil {
			return
		}
	}
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
