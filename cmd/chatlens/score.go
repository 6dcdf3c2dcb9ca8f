package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/profile"
	"github.com/chatlens/chatlens/internal/render"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [export file]",
		Short: "Engagement score ranking across all authors",
		Long: `Ranks authors by a weighted composite of six normalized metrics:
total messages (30%), messages per day (20%), average words per message
(20%), emoji per message (10%), media ratio (10%), and link ratio (10%).
Scores range from 0 to 100.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := loadRecords(args)
			if err != nil {
				return err
			}

			profiles := profile.Build(records, detect.Gomoji{}, detect.NewXURLs())
			scores := profile.Scores(profiles)

			if !stdoutIsTerminal() {
				for _, s := range scores {
					fmt.Printf("%s\t%.2f\n", s.Author, s.Value)
				}
				return nil
			}
			fmt.Print(render.Scores(scores))
			return nil
		},
	}
}
