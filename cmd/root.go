// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const defaultTimeout = 5 * time.Minute

var rootCmd = &cobra.Command{
	Use:   "github-language-stats",
	Short: "Writes a user's GitHub language statistics into a README.",
	Long: `github-language-stats sums the language byte counts of every repository a
GitHub user owns (forks excluded), renders them as a bar chart and writes the
chart between the markers

  <!-- GITHUB_LANGUAGE_STATS_START -->
  <!-- GITHUB_LANGUAGE_STATS_END -->

of a README, appending the section if the markers are missing.

Configuration is read from the environment (GITHUB_TOKEN, GITHUB_USERNAME,
README_REPO, README_PATH, COMMIT_MESSAGE, MAX_LANGUAGES, MIN_PERCENTAGE,
BAR_WIDTH, GITHUB_API), optionally seeded from a .env file. Flags override it.
Running without a subcommand is the same as "update".`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runUpdate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Errors are reported on stderr; the exit status does not distinguish failures.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("env-file", ".env", "File of KEY=value pairs loaded into the environment if present")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "Timeout for all GitHub operations")
	addConfigFlags(rootCmd)
	addUpdateFlags(rootCmd)
}
