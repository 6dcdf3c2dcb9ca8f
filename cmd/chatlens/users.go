package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/profile"
	"github.com/chatlens/chatlens/internal/render"
	"github.com/chatlens/chatlens/internal/stats"
)

func usersCmd() *cobra.Command {
	var profiles, emoji bool
	var user string
	var topN int

	cmd := &cobra.Command{
		Use:   "users [export file]",
		Short: "Top users by volume, shares, profiles, and emoji habits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, cfg, err := loadRecords(args)
			if err != nil {
				return err
			}

			if topN == 0 {
				topN = cfg.TopUsers
			}

			if emoji {
				rows := stats.EmojiFrequency(records, user, detect.Gomoji{})
				if !stdoutIsTerminal() {
					for _, r := range rows {
						fmt.Printf("%s\t%d\n", r.Name, r.Count)
					}
					return nil
				}
				fmt.Print(render.Activity("Emoji frequency", rows))
				return nil
			}

			if profiles {
				rows := profile.Build(records, detect.Gomoji{}, detect.NewXURLs())
				if !stdoutIsTerminal() {
					for _, p := range rows {
						fmt.Printf("%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%s\n",
							p.Author, p.TotalMessages, p.ActiveDays, p.PerDay, p.AvgWords,
							p.EmojiPerMsg, p.EmojiMsgRatio, p.MediaRatio, p.LinkRatio,
							p.NightRatio, p.ShortRatio, p.LongRatio, p.TopHour, p.TopDay)
					}
					return nil
				}
				fmt.Print(render.Profiles(rows))
				return nil
			}

			top, shares := stats.TopUsers(records, topN)
			if !stdoutIsTerminal() {
				for _, s := range shares {
					fmt.Printf("%s\t%.2f\n", s.Name, s.Percent)
				}
				return nil
			}
			fmt.Print(render.TopUsers(top, shares))
			return nil
		},
	}

	cmd.Flags().BoolVar(&profiles, "profiles", false, "Show the full behavior profile table")
	cmd.Flags().BoolVar(&emoji, "emoji", false, "Show the emoji glyph frequency table")
	cmd.Flags().StringVar(&user, "user", "", "Filter the emoji table to one author")
	cmd.Flags().IntVar(&topN, "top", 0, "Rows in the ranking (0 = config default)")

	return cmd
}
