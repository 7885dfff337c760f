package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	name := a.session.User().DisplayName()
	if name == "" {
		return "(admin)"
	}
	return fmt.Sprintf("(%s)", name)
}

// Root is the interactive loop. Admin commands are gated on the session
// predicate; an unauthenticated user sees only login and help.
func (a *App) Root(ctx context.Context) {
	fmt.Println("WedMac admin console (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Printf("Restored session for %s\n", a.session.User().DisplayName())
	}

	for {
		fmt.Printf("wedmac %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "exit", "quit":
			return
		case "login":
			a.Login(ctx)
		case "pwlogin":
			a.PasswordLogin(ctx)
		default:
			if !a.isLoggedIn() {
				fmt.Println("Please log in first (type 'login').")
				continue
			}
			a.runAdminCommand(ctx, cmd, args)
		}
	}
}

func (a *App) runAdminCommand(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "logout":
		a.Logout(ctx)
	case "whoami":
		a.whoami()
	case "tickets":
		a.listTickets(ctx)
	case "respond":
		a.respondTicket(ctx)
	case "delticket":
		a.deleteTicket(ctx)
	case "logs":
		a.activityLogs(ctx, args)
	case "import":
		a.importFile(ctx, args)
	case "submit":
		a.submitBatch(ctx)
	case "export":
		a.exportResults(args)
	default:
		fmt.Printf("Unknown command %q (type 'help').\n", cmd)
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: logout, whoami, tickets, respond, delticket, logs [page], import <file>, submit, export [dir], exit")
	} else {
		fmt.Println("Available commands: login, pwlogin, exit")
	}
}
