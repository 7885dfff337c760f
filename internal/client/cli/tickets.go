package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) listTickets(ctx context.Context) {
	items, err := a.admin.ListTickets(ctx)
	if err != nil {
		a.printAdminError(err)
		return
	}
	if len(items) == 0 {
		fmt.Println("No support tickets.")
		return
	}

	for _, t := range items {
		fmt.Printf("#%d [%s] %s", t.ID, t.Status, t.Subject)
		if t.UserEmail != "" {
			fmt.Printf(" (%s)", t.UserEmail)
		}
		fmt.Println()
		if t.Message != "" {
			fmt.Printf("    %s\n", t.Message)
		}
		if t.AdminResponse != "" {
			fmt.Printf("    response: %s\n", t.AdminResponse)
		}
	}
}

func (a *App) respondTicket(ctx context.Context) {
	id, ok := a.promptTicketID()
	if !ok {
		return
	}

	status, err := getSimpleText(a.reader, "New status (open/in_progress/resolved)", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	response, err := GetMultiline(a.reader, "Response text", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if err := a.admin.RespondTicket(ctx, id, status, response); err != nil {
		a.printAdminError(err)
		return
	}
	fmt.Printf("Ticket #%d updated.\n", id)
}

func (a *App) deleteTicket(ctx context.Context) {
	id, ok := a.promptTicketID()
	if !ok {
		return
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete ticket #%d? (y/n)", id), os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if confirm != "y" && confirm != "yes" {
		fmt.Println("Cancelled.")
		return
	}

	if err := a.admin.DeleteTicket(ctx, id); err != nil {
		a.printAdminError(err)
		return
	}
	fmt.Printf("Ticket #%d deleted.\n", id)
}

func (a *App) promptTicketID() (int, bool) {
	raw, err := getSimpleText(a.reader, "Ticket id", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		fmt.Println("Ticket id must be a positive number.")
		return 0, false
	}
	return id, true
}
