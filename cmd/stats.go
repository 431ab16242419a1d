package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/naka-gawa/github-language-stats/internal/render"
	"github.com/naka-gawa/github-language-stats/internal/usecase"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregates language stats and prints them without touching the README",
	Long:  `Aggregates the languages of a GitHub user's non-forked repositories and prints the ranked result as JSON (default) or as the rendered bar chart.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFor(cmd)
		format, _ := cmd.Flags().GetString("format")
		if format != "json" && format != "text" {
			return fmt.Errorf("unsupported format %q, want json or text", format)
		}
		timeout, _ := cmd.Flags().GetDuration("timeout")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		githubGateway, err := newGateway(cfg.Token, cfg.API, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		report, err := usecase.NewAggregator(githubGateway, logger).Aggregate(ctx, cfg.Username, cfg.RankOptions())
		if err != nil {
			return err
		}

		if format == "text" {
			fmt.Fprint(cmd.OutOrStdout(), render.Markdown(report.Languages, cfg.BarWidth))
			return nil
		}

		// Marshal the results into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("format", "f", "json", "Output format: json or text")
}
