package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/naka-gawa/github-language-stats/internal/config"
	"github.com/spf13/cobra"
)

// addConfigFlags registers the flags that override environment configuration.
func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("user", "u", "", "GitHub user whose repositories are counted (env "+config.EnvUsername+")")
	flags.String("api", "", "API used to list repositories: rest or graphql (env "+config.EnvAPI+")")
	flags.Int("max-languages", 0, "Maximum number of languages shown (env "+config.EnvMaxLanguages+", default 10)")
	flags.Float64("min-percentage", 0, "Minimum share for a language to be shown (env "+config.EnvMinPercentage+", default 1.0)")
	flags.Int("bar-width", 0, "Number of blocks in each bar (env "+config.EnvBarWidth+", default 20)")
}

// loadConfig builds the run configuration from the env file, the environment and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	envFile, _ := flags.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			// The default .env is optional; an explicitly requested file is not.
			if !errors.Is(err, fs.ErrNotExist) || flags.Changed("env-file") {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	}

	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	if flags.Changed("user") {
		cfg.Username, _ = flags.GetString("user")
	}
	if flags.Changed("api") {
		cfg.API, _ = flags.GetString("api")
	}
	if flags.Changed("max-languages") {
		cfg.MaxLanguages, _ = flags.GetInt("max-languages")
	}
	if flags.Changed("min-percentage") {
		cfg.MinPercentage, _ = flags.GetFloat64("min-percentage")
	}
	if flags.Changed("bar-width") {
		cfg.BarWidth, _ = flags.GetInt("bar-width")
	}
	if flags.Lookup("readme-repo") != nil {
		if flags.Changed("readme-repo") {
			cfg.ReadmeRepo, _ = flags.GetString("readme-repo")
		}
		if flags.Changed("readme-path") {
			cfg.ReadmePath, _ = flags.GetString("readme-path")
		}
		if flags.Changed("message") {
			cfg.CommitMessage, _ = flags.GetString("message")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
