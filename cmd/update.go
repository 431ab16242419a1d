package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/naka-gawa/github-language-stats/internal/config"
	"github.com/naka-gawa/github-language-stats/internal/gateway"
	"github.com/naka-gawa/github-language-stats/internal/readme"
	"github.com/naka-gawa/github-language-stats/internal/render"
	"github.com/naka-gawa/github-language-stats/internal/usecase"
	"github.com/spf13/cobra"
)

// newGateway builds the GitHub gateway used by the commands.
var newGateway = gateway.NewGitHubGateway

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Aggregates language stats and writes them into the README",
	Long: `Fetches every repository owned by the user, ranks the languages of the
non-forked ones and replaces the marked section of the README with a bar chart.
With --dry-run the resulting README is printed instead of committed.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	addUpdateFlags(updateCmd)
}

// addUpdateFlags registers the README flags as local flags of cmd.
func addUpdateFlags(cmd *cobra.Command) {
	cmd.Flags().String("readme-repo", "", "Repository holding the README as owner/name (env "+config.EnvReadmeRepo+", default the user's profile repository)")
	cmd.Flags().String("readme-path", "", "Path of the README inside the repository (env "+config.EnvReadmePath+", default README.md)")
	cmd.Flags().String("message", "", "Commit message (env "+config.EnvCommitMessage+")")
	cmd.Flags().Bool("dry-run", false, "Print the updated README instead of committing it")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	logger := loggerFor(cmd)
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	owner, repo, err := cfg.ReadmeOwnerRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	// Inject dependencies and run the main business logic.
	githubGateway, err := newGateway(cfg.Token, cfg.API, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}

	logger.Info("Fetching...", "user", cfg.Username, "api", cfg.API)
	start := time.Now()
	report, err := usecase.NewAggregator(githubGateway, logger).Aggregate(ctx, cfg.Username, cfg.RankOptions())
	if err != nil {
		return err
	}
	logger.Debug("Fetched repositories",
		"repositories", report.Summary.Repositories,
		"forks", report.Summary.SkippedForks,
		"elapsed", time.Since(start).Round(time.Millisecond))

	logger.Info("Generating...")
	content := render.Markdown(report.Languages, cfg.BarWidth)

	logger.Info("Updating...", "repo", owner+"/"+repo, "path", cfg.ReadmePath)
	target := usecase.ReadmeTarget{
		Owner:   owner,
		Repo:    repo,
		Path:    cfg.ReadmePath,
		Message: cfg.CommitMessage,
		Markers: readme.DefaultMarkers(),
	}
	result, err := usecase.NewPublisher(githubGateway, logger, dryRun).Publish(ctx, target, content)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), result.Document.Content)
		return nil
	}
	if result.Written {
		logger.Info("GitHub profile README updated successfully!")
	}
	logger.Info("OK.")
	return nil
}
