package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/render"
	"github.com/chatlens/chatlens/internal/stats"
)

func statsCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "stats [export file]",
		Short: "Message, word, media, and link totals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := loadRecords(args)
			if err != nil {
				return err
			}

			s := stats.Summarize(records, user, detect.NewXURLs())

			if !stdoutIsTerminal() {
				fmt.Printf("%d\t%d\t%d\t%d\n", s.Messages, s.Words, s.Media, s.Links)
				return nil
			}

			scope := user
			if scope == "" {
				scope = stats.Overall
			}
			fmt.Print(render.Summary(s, scope))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Filter to one author")

	return cmd
}
