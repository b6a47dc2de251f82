package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"copydesk/internal/query"
	"copydesk/internal/store"
	"copydesk/internal/users"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var statusFlag string
	var searchFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := query.Options{Search: searchFlag}
			if kindFlag != "" {
				kind, ok := store.ParseKind(kindFlag)
				if !ok {
					return fmt.Errorf("unknown kind %q (want article or product)", kindFlag)
				}
				opts.Kind = kind
			}
			if statusFlag != "" {
				status, ok := store.ParseStatus(statusFlag)
				if !ok {
					return fmt.Errorf("unknown status %q (want one of %s)", statusFlag, statusNames())
				}
				opts.Status = status
			}
			return ctx.withApp(func(a *app) error {
				items, err := a.store.ListItems(cmd.Context())
				if err != nil {
					return err
				}
				items = query.Filter(items, opts, a.directory)

				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "No matching items")
					return nil
				}
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, itemRow(item, users.DisplayName(a.directory, item.AuthorID)))
				}
				fmt.Fprintln(out, renderItemTable(rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Filter by content kind")
	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "Filter by workflow status")
	cmd.Flags().StringVar(&searchFlag, "search", "", "Match title or author, case-insensitively")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show one content item in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				item, err := a.store.GetItem(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if item == nil {
					return fmt.Errorf("no item with id %s", args[0])
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:        %s\n", item.ID)
				fmt.Fprintf(out, "Kind:      %s\n", item.Kind)
				fmt.Fprintf(out, "Title:     %s\n", item.Title)
				fmt.Fprintf(out, "Status:    %s\n", item.Status)
				fmt.Fprintf(out, "Author:    %s\n", users.DisplayName(a.directory, item.AuthorID))
				fmt.Fprintf(out, "Created:   %s\n", formatTime(&item.CreatedAt))
				fmt.Fprintf(out, "Updated:   %s\n", formatTime(&item.UpdatedAt))
				if item.ScheduledFor != nil {
					fmt.Fprintf(out, "Scheduled: %s\n", formatTime(item.ScheduledFor))
				}
				if item.ExternalURL != "" {
					fmt.Fprintf(out, "Published: %s (post %s on %s)\n", item.ExternalURL, item.ExternalPostID, item.SiteID)
				}
				if item.MetaDescription != "" {
					fmt.Fprintf(out, "\nMeta description:\n%s\n", item.MetaDescription)
				}
				switch {
				case item.Body != "":
					fmt.Fprintf(out, "\n%s\n", item.Body)
				case item.LongDescription != "":
					fmt.Fprintf(out, "\n%s\n", item.LongDescription)
					if item.ShortDescription != "" {
						fmt.Fprintf(out, "\nShort description:\n%s\n", item.ShortDescription)
					}
				}
				return nil
			})
		},
	}
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				actor, err := a.requireActor(cmd.Context())
				if err != nil {
					return err
				}
				if err := a.engine.Delete(cmd.Context(), args[0], actor); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", shortID(args[0]))
				return nil
			})
		},
	}
}

func statusNames() string {
	statuses := store.AllStatuses()
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}
