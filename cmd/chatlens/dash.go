package main

import (
	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/sentiment"
	"github.com/chatlens/chatlens/internal/tui"
)

func dashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash [export file]",
		Short: "Interactive dashboard: browse stats per author",
		Long:  `Opens a TUI with the author list on the left and the stats for the selection on the right. Type to filter authors; Enter copies the selected row as TSV.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, cfg, err := loadRecords(args)
			if err != nil {
				return err
			}

			return tui.Run(records, detect.NewXURLs(), detect.Gomoji{}, sentiment.NewVader(), cfg.TopUsers)
		},
	}
}
