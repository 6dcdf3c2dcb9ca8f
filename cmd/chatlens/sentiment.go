package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/render"
	"github.com/chatlens/chatlens/internal/sentiment"
)

func sentimentCmd() *cobra.Command {
	var user, view, freq string

	cmd := &cobra.Command{
		Use:   "sentiment [export file]",
		Short: "VADER polarity: timeline, distribution, or per-user means",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := loadRecords(args)
			if err != nil {
				return err
			}

			scorer := sentiment.NewVader()

			switch view {
			case "timeline":
				bucket := sentiment.Daily
				if freq == "month" {
					bucket = sentiment.Monthly
				}
				points := sentiment.Timeline(records, user, bucket, scorer)
				if !stdoutIsTerminal() {
					for _, p := range points {
						fmt.Printf("%s\t%.4f\n", p.Label, p.Mean)
					}
					return nil
				}
				fmt.Print(render.SentimentTimeline(points))

			case "dist":
				c := sentiment.Distribution(records, user, scorer)
				if !stdoutIsTerminal() {
					fmt.Printf("positive\t%d\nnegative\t%d\nneutral\t%d\n", c.Positive, c.Negative, c.Neutral)
					return nil
				}
				fmt.Print(render.SentimentCounts(c))

			case "users":
				means := sentiment.ByUser(records, scorer)
				if !stdoutIsTerminal() {
					for _, m := range means {
						fmt.Printf("%s\t%.3f\n", m.Author, m.Mean)
					}
					return nil
				}
				fmt.Print(render.SentimentByUser(means))

			default:
				return fmt.Errorf("unknown --view %q (want timeline, dist, or users)", view)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Filter to one author")
	cmd.Flags().StringVar(&view, "view", "dist", "View (timeline/dist/users)")
	cmd.Flags().StringVar(&freq, "freq", "day", "Timeline bucket size (day/month)")

	return cmd
}
