package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/config"
	"github.com/chatlens/chatlens/internal/detect"
	"github.com/chatlens/chatlens/internal/parse"
	"github.com/chatlens/chatlens/internal/sentiment"
	"github.com/chatlens/chatlens/internal/stats"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [export file]",
		Short: "Self-check: verify config, export file, and detectors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			if cfg.ExportPath == "" {
				fmt.Println("  export_path: (not set)")
			} else {
				fmt.Printf("  export_path: %s\n", cfg.ExportPath)
			}
			fmt.Printf("  top_users:   %d\n", cfg.TopUsers)

			fmt.Println("\n=== Detectors ===")
			urls := detect.NewXURLs()
			if n := len(urls.FindURLs("see https://example.com")); n == 1 {
				fmt.Println("  URL detector:   OK")
			} else {
				fmt.Printf("  URL detector:   BROKEN (found %d URLs in sample)\n", n)
			}
			emoji := detect.Gomoji{}
			if emoji.IsEmoji('😀') && !emoji.IsEmoji('a') {
				fmt.Println("  Emoji detector: OK")
			} else {
				fmt.Println("  Emoji detector: BROKEN")
			}
			if s := sentiment.NewVader().Compound("this is wonderful"); s > 0 {
				fmt.Println("  Sentiment:      OK")
			} else {
				fmt.Printf("  Sentiment:      SUSPECT (sample scored %.3f)\n", s)
			}

			path := cfg.ExportPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				fmt.Println("\n=== Export ===")
				fmt.Println("  (no file: pass a path or set export_path)")
				return nil
			}

			fmt.Println("\n=== Export ===")
			info, err := os.Stat(path)
			if err != nil {
				fmt.Printf("  %s (NOT FOUND)\n", path)
				return nil
			}
			fmt.Printf("  Path: %s\n", path)
			fmt.Printf("  Size: %.1f KB\n", float64(info.Size())/1024)

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			records, err := parse.Parse(string(data))
			if err != nil {
				fmt.Printf("  Parse: FAILED (%v)\n", err)
				return nil
			}

			notifications := 0
			for _, r := range records {
				if r.IsNotification() {
					notifications++
				}
			}
			fmt.Printf("  Records:       %d\n", len(records))
			fmt.Printf("  Authors:       %d\n", len(stats.Authors(records)))
			fmt.Printf("  Notifications: %d\n", notifications)
			if len(records) == 0 {
				fmt.Println("  Status: no timestamp matches (wrong format or empty chat?)")
			} else {
				fmt.Println("  Status: OK")
			}
			return nil
		},
	}
}
