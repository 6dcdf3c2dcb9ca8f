package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/render"
	"github.com/chatlens/chatlens/internal/stats"
)

func timelineCmd() *cobra.Command {
	var user, freq string

	cmd := &cobra.Command{
		Use:   "timeline [export file]",
		Short: "Message counts over time, per month or per day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := loadRecords(args)
			if err != nil {
				return err
			}

			switch freq {
			case "month":
				rows := stats.MonthlyTimeline(records, user)
				if !stdoutIsTerminal() {
					for _, r := range rows {
						fmt.Printf("%s\t%d\n", r.Label, r.Messages)
					}
					return nil
				}
				fmt.Print(render.MonthlyTimeline(rows))
			case "day":
				rows := stats.DailyTimeline(records, user)
				if !stdoutIsTerminal() {
					for _, r := range rows {
						fmt.Printf("%s\t%d\n", r.Date.Format("2006-01-02"), r.Messages)
					}
					return nil
				}
				fmt.Print(render.DailyTimeline(rows))
			default:
				return fmt.Errorf("unknown --freq %q (want month or day)", freq)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Filter to one author")
	cmd.Flags().StringVar(&freq, "freq", "month", "Bucket size (month/day)")

	return cmd
}
