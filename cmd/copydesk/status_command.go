package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"copydesk/internal/notifications"
	"copydesk/internal/store"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show item counts per workflow status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				stats, err := a.store.Stats(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				statuses := store.AllStatuses()
				rows := make([][]string, 0, len(statuses)+1)
				total := 0
				for _, status := range statuses {
					count := stats[status]
					total += count
					rows = append(rows, []string{string(status), strconv.Itoa(count)})
				}
				rows = append(rows, []string{"total", strconv.Itoa(total)})
				fmt.Fprintln(out, renderTable([]string{"Status", "Count"}, rows, 1))

				if note := a.center.Current(); note != nil {
					fmt.Fprintln(out, renderNotification(note, shouldColorize(out)))
				}
				return nil
			})
		},
	}
}

func renderNotification(note *notifications.Notification, colorize bool) string {
	line := fmt.Sprintf("[%s] %s", note.Severity, note.Message)
	if !colorize {
		return line
	}
	switch note.Severity {
	case notifications.SeveritySuccess:
		return ansiGreen + line + ansiReset
	case notifications.SeverityError:
		return ansiRed + line + ansiReset
	default:
		return ansiBlue + line + ansiReset
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
