package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	apperrors "github.com/cliento/cliento/pkg/errors"
)

// printTable renders rows with aligned columns on stdout
func printTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// confirm asks the user before a destructive action; assumeYes skips the
// prompt.
func confirm(prompt string, assumeYes bool) func() bool {
	return func() bool {
		if assumeYes {
			return true
		}
		fmt.Printf("%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}

// renderError turns an AppError into the message shown to the user, with
// per-field lines for validation failures.
func renderError(err error) string {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation:
		var b strings.Builder
		b.WriteString(appErr.Message)
		fields := make([]string, 0, len(appErr.Fields))
		for field := range appErr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(&b, "\n  %s %s", field, appErr.Fields[field])
		}
		return b.String()
	case apperrors.ErrorTypeUnauthorized:
		return "not logged in (run `cliento login`)"
	case apperrors.ErrorTypeTransport:
		return fmt.Sprintf("could not reach the server: %v", appErr.Unwrap())
	default:
		return appErr.Error()
	}
}

// requireAuth verifies the restored session before a data command runs
func requireAuth(ctx context.Context, a *app) error {
	if err := a.session.Init(ctx); err != nil {
		return err
	}
	if !a.session.Authenticated() {
		return apperrors.NewStatusError("session expired or missing", 401)
	}
	return nil
}
