package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/render"
	"github.com/chatlens/chatlens/internal/stats"
)

func activityCmd() *cobra.Command {
	var user, by string

	cmd := &cobra.Command{
		Use:   "activity [export file]",
		Short: "Busiest days, months, or the day-by-hour heatmap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := loadRecords(args)
			if err != nil {
				return err
			}

			switch by {
			case "week":
				printActivity("Weekly activity", stats.WeeklyActivity(records, user))
			case "month":
				printActivity("Monthly activity", stats.MonthlyActivity(records, user))
			case "heatmap":
				h := stats.ActivityHeatmap(records, user)
				if !stdoutIsTerminal() {
					fmt.Printf("day\t%s\n", strings.Join(h.Periods, "\t"))
					for i, day := range h.Days {
						cells := make([]string, len(h.Counts[i]))
						for j, c := range h.Counts[i] {
							cells[j] = fmt.Sprintf("%d", c)
						}
						fmt.Printf("%s\t%s\n", day, strings.Join(cells, "\t"))
					}
					return nil
				}
				fmt.Print(render.Heatmap(h))
			default:
				return fmt.Errorf("unknown --by %q (want week, month, or heatmap)", by)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Filter to one author")
	cmd.Flags().StringVar(&by, "by", "week", "Grouping (week/month/heatmap)")

	return cmd
}

func printActivity(heading string, rows []stats.NameCount) {
	if !stdoutIsTerminal() {
		for _, r := range rows {
			fmt.Printf("%s\t%d\n", r.Name, r.Count)
		}
		return
	}
	fmt.Print(render.Activity(heading, rows))
}
