package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"copydesk/internal/services/generator"
	"copydesk/internal/store"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var keywords []string
	var tone string
	var language string

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Draft a new content item from a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := store.ParseKind(kindFlag)
			if !ok {
				return fmt.Errorf("unknown kind %q (want article or product)", kindFlag)
			}
			return ctx.withApp(func(a *app) error {
				actor, err := a.requireActor(cmd.Context())
				if err != nil {
					return err
				}

				client := generator.NewClient(generator.Config{
					APIKey:         a.cfg.Generator.APIKey,
					BaseURL:        a.cfg.Generator.BaseURL,
					Model:          a.cfg.Generator.Model,
					TimeoutSeconds: a.cfg.Generator.TimeoutSeconds,
				})
				copyDraft, err := client.Generate(cmd.Context(), kind, generator.Params{
					Topic:    strings.TrimSpace(args[0]),
					Keywords: keywords,
					Tone:     tone,
					Language: language,
				})
				if err != nil {
					a.center.Error(cmd.Context(), err, "generate")
					return err
				}

				item, err := a.store.CreateDraft(cmd.Context(), store.Draft{
					Kind:             kind,
					Title:            copyDraft.Title,
					MetaDescription:  copyDraft.MetaDescription,
					Body:             copyDraft.Body,
					LongDescription:  copyDraft.LongDescription,
					ShortDescription: copyDraft.ShortDescription,
					AuthorID:         actor.ID,
				})
				if err != nil {
					return err
				}

				a.logger.Info("draft generated", "item", item.ID, "kind", string(kind), "title", item.Title)
				fmt.Fprintf(cmd.OutOrStdout(), "Created draft %s: %s\n", shortID(item.ID), item.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "article", "Content kind (article or product)")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "Keyword to work into the copy (repeatable)")
	cmd.Flags().StringVar(&tone, "tone", "", "Tone of voice for the copy")
	cmd.Flags().StringVar(&language, "language", "", "Language for the copy")
	return cmd
}
