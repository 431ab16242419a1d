// Package config holds the runtime configuration of the tool.
//
// Values come from the process environment (optionally seeded from a .env
// file) and may be overridden by command line flags. The resulting Config is
// passed explicitly to the aggregation and rendering code.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/naka-gawa/github-language-stats/internal/gateway"
	"github.com/naka-gawa/github-language-stats/internal/render"
	"github.com/naka-gawa/github-language-stats/internal/usecase"
)

// Environment variable names.
const (
	EnvToken         = "GITHUB_TOKEN"
	EnvUsername      = "GITHUB_USERNAME"
	EnvReadmeRepo    = "README_REPO"
	EnvReadmePath    = "README_PATH"
	EnvCommitMessage = "COMMIT_MESSAGE"
	EnvMaxLanguages  = "MAX_LANGUAGES"
	EnvMinPercentage = "MIN_PERCENTAGE"
	EnvBarWidth      = "BAR_WIDTH"
	EnvAPI           = "GITHUB_API"
)

const (
	DefaultReadmePath    = "README.md"
	DefaultCommitMessage = "Update language statistics"
)

var (
	ErrMissingToken    = errors.New("GitHub token not found. Set the " + EnvToken + " environment variable")
	ErrMissingUsername = errors.New("GitHub username not found. Set the " + EnvUsername + " environment variable")
)

// Config is the complete configuration for one run.
type Config struct {
	Token         string
	Username      string
	ReadmeRepo    string
	ReadmePath    string
	CommitMessage string
	MaxLanguages  int
	MinPercentage float64
	BarWidth      int
	API           string
}

// Default returns a Config with every optional value set to its default.
func Default() *Config {
	return &Config{
		ReadmePath:    DefaultReadmePath,
		CommitMessage: DefaultCommitMessage,
		MaxLanguages:  usecase.DefaultMaxLanguages,
		MinPercentage: usecase.DefaultMinPercentage,
		BarWidth:      render.DefaultBarWidth,
		API:           gateway.APIREST,
	}
}

// FromEnv builds a Config from lookup, typically os.LookupEnv.
// Required values are not checked here; call Validate once overrides are applied.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	cfg.Token, _ = get(EnvToken)
	cfg.Username, _ = get(EnvUsername)
	cfg.ReadmeRepo, _ = get(EnvReadmeRepo)
	if v, ok := get(EnvReadmePath); ok {
		cfg.ReadmePath = v
	}
	if v, ok := get(EnvCommitMessage); ok {
		cfg.CommitMessage = v
	}
	if v, ok := get(EnvAPI); ok {
		cfg.API = strings.ToLower(v)
	}
	if v, ok := get(EnvMaxLanguages); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMaxLanguages, v, err)
		}
		cfg.MaxLanguages = n
	}
	if v, ok := get(EnvMinPercentage); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMinPercentage, v, err)
		}
		cfg.MinPercentage = f
	}
	if v, ok := get(EnvBarWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvBarWidth, v, err)
		}
		cfg.BarWidth = n
	}
	return cfg, nil
}

// Validate checks required values and ranges.
// The README target is resolved separately by ReadmeOwnerRepo, since only
// commands that write the README need it.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Username == "" {
		return ErrMissingUsername
	}
	if c.MaxLanguages < 1 {
		return fmt.Errorf("max languages must be at least 1, got %d", c.MaxLanguages)
	}
	if c.MinPercentage < 0 || c.MinPercentage > 100 {
		return fmt.Errorf("min percentage must be between 0 and 100, got %g", c.MinPercentage)
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("bar width must be at least 1, got %d", c.BarWidth)
	}
	if c.API != gateway.APIREST && c.API != gateway.APIGraphQL {
		return fmt.Errorf("unsupported GitHub API %q, want %q or %q", c.API, gateway.APIREST, gateway.APIGraphQL)
	}
	return nil
}

// ReadmeOwnerRepo resolves the repository holding the README.
// It defaults to the user's profile repository (username/username);
// a bare repository name is taken to belong to the user.
func (c *Config) ReadmeOwnerRepo() (owner, repo string, err error) {
	target := c.ReadmeRepo
	if target == "" {
		target = c.Username
	}
	owner, repo, found := strings.Cut(target, "/")
	if !found {
		return c.Username, target, nil
	}
	if owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid README repository %q, want owner/name", target)
	}
	return owner, repo, nil
}

// RankOptions returns the ranking part of the configuration.
func (c *Config) RankOptions() usecase.RankOptions {
	return usecase.RankOptions{MaxLanguages: c.MaxLanguages, MinPercentage: c.MinPercentage}
}
