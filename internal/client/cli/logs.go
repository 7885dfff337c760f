package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/wedmac/wedmac-admin/internal/common"
)

func (a *App) activityLogs(ctx context.Context, args []string) {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Println("Usage: logs [page]")
			return
		}
		page = n
	}

	result, err := a.admin.ActivityLogs(ctx, page, a.config.PageSize)
	if err != nil {
		a.printAdminError(err)
		return
	}

	if len(result.Logs) == 0 {
		fmt.Println("No activity logs.")
		return
	}

	for _, entry := range result.Logs {
		fmt.Println(formatLogEntry(entry))
	}
	fmt.Printf("page %d of %d (%d entries total)\n", result.CurrentPage, result.TotalPages, result.TotalCount)
}

// formatLogEntry renders a server-defined log row. Well-known fields come
// first, everything else follows in key order.
func formatLogEntry(entry map[string]any) string {
	out := ""
	for _, key := range []string{"timestamp", "created_at", "action", "artist", "description"} {
		if v, ok := entry[key]; ok {
			out += fmt.Sprintf("%v ", v)
			delete(entry, key)
		}
	}

	rest := make([]string, 0, len(entry))
	for k := range entry {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	for _, k := range rest {
		out += fmt.Sprintf("%s=%v ", k, entry[k])
	}
	if out == "" {
		return out
	}
	return out[:len(out)-1]
}

func (a *App) printAdminError(err error) {
	if errors.Is(err, common.ErrUnauthorized) {
		fmt.Println("Session expired, please log in again.")
		return
	}
	fmt.Printf("error: %v\n", err)
}
