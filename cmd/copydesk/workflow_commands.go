package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"copydesk/internal/store"
	"copydesk/internal/workflow"
)

func newSubmitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <item-id>",
		Short: "Submit a draft for review",
		Args:  cobra.ExactArgs(1),
		RunE:  transitionRunE(ctx, store.StatusNeedsReview, "Submitted %s for review\n"),
	}
}

func newApproveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <item-id>",
		Short: "Approve an item in review",
		Args:  cobra.ExactArgs(1),
		RunE:  transitionRunE(ctx, store.StatusApproved, "Approved %s\n"),
	}
}

func newRejectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <item-id>",
		Short: "Send an item in review back to draft",
		Args:  cobra.ExactArgs(1),
		RunE:  transitionRunE(ctx, store.StatusDraft, "Rejected %s back to draft\n"),
	}
}

func transitionRunE(ctx *commandContext, target store.Status, doneFormat string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return ctx.withApp(func(a *app) error {
			actor, err := a.requireActor(cmd.Context())
			if err != nil {
				return err
			}
			item, err := a.engine.RequestTransition(cmd.Context(), args[0], target, actor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), doneFormat, item.Title)
			return nil
		})
	}
}

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var siteFlag string
	var categoryIDs []int64
	var update bool

	cmd := &cobra.Command{
		Use:   "publish <item-id>",
		Short: "Publish an approved item to a content site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				actor, err := a.requireActor(cmd.Context())
				if err != nil {
					return err
				}
				siteID := siteFlag
				if siteID == "" && len(a.cfg.CMS.Sites) > 0 {
					siteID = a.cfg.CMS.Sites[0].ID
				}
				item, err := a.engine.Publish(cmd.Context(), args[0], siteID, workflow.PublishOptions{
					CategoryIDs: categoryIDs,
					Update:      update,
				}, actor)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if item == nil {
					fmt.Fprintln(out, "Item was removed while publishing; the external post exists but nothing was recorded locally")
					return nil
				}
				fmt.Fprintf(out, "Published %s: %s\n", item.Title, item.ExternalURL)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&siteFlag, "site", "", "Target site id (defaults to the first configured site)")
	cmd.Flags().Int64SliceVar(&categoryIDs, "category", nil, "Category id on the target site (repeatable)")
	cmd.Flags().BoolVar(&update, "update", false, "Update the existing external post instead of creating a new one")
	return cmd
}

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	var startFlag string
	var intervalDays int

	cmd := &cobra.Command{
		Use:   "schedule <item-id>...",
		Short: "Schedule approved items at a staggered cadence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseStartDate(startFlag)
			if err != nil {
				return err
			}
			return ctx.withApp(func(a *app) error {
				actor, err := a.requireActor(cmd.Context())
				if err != nil {
					return err
				}
				count, err := a.engine.ScheduleBatch(cmd.Context(), args, start, intervalDays, actor)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if skipped := len(args) - count; skipped > 0 {
					fmt.Fprintf(out, "Scheduled %d item(s); skipped %d not in approved status\n", count, skipped)
					return nil
				}
				fmt.Fprintf(out, "Scheduled %d item(s)\n", count)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "First publish date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().IntVar(&intervalDays, "interval", 1, "Days between consecutive items")
	return cmd
}
