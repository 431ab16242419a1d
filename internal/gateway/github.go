// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-language-stats/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Supported values for the API used to list repositories.
const (
	APIREST    = "rest"
	APIGraphQL = "graphql"
)

// Fetcher defines the behavior of a gateway for fetching repositories from GitHub.
type Fetcher interface {
	// FetchRepositories returns every repository owned by user. Forks are included
	// with their Fork flag set; their languages may be left empty.
	FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error)
}

// ReadmeStore reads and writes a file in a repository.
type ReadmeStore interface {
	GetReadme(ctx context.Context, owner, repo, path string) (*domain.Document, error)
	UpdateReadme(ctx context.Context, owner, repo, path string, doc *domain.Document, message string) error
}

// GitHubGateway is the concrete implementation of Fetcher and ReadmeStore.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	api           string
	logger        *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// api selects how repositories are listed: APIREST or APIGraphQL.
func NewGitHubGateway(token, api string, logger *log.Logger) (*GitHubGateway, error) {
	if api != APIREST && api != APIGraphQL {
		return nil, fmt.Errorf("unsupported GitHub API %q", api)
	}
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		api:           api,
		logger:        logger,
	}, nil
}

// FetchRepositories lists the repositories owned by user together with their languages.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error) {
	if g.api == APIGraphQL {
		return g.fetchRepositoriesGraphQL(ctx, user)
	}
	return g.fetchRepositoriesREST(ctx, user)
}

func (g *GitHubGateway) fetchRepositoriesREST(ctx context.Context, user string) ([]domain.Repository, error) {
	g.logger.Debug("Fetching repositories using REST API...", "user", user)
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var repos []domain.Repository
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories with REST API: %w", err)
		}
		for _, r := range page {
			repo := domain.Repository{
				Owner: r.GetOwner().GetLogin(),
				Name:  r.GetName(),
				Fork:  r.GetFork(),
			}
			// Forks never count, so their languages are not worth a request.
			if !repo.Fork {
				if repo.Languages, err = g.fetchLanguages(ctx, repo.Owner, repo.Name); err != nil {
					return nil, err
				}
				g.logger.Debug("  Fetched languages", "repo", repo.FullName(), "languages", len(repo.Languages))
			}
			repos = append(repos, repo)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Debug("  Fetching next page of repositories...", "page", opts.Page)
	}
	g.logger.Debug("Completed fetching repositories.", "count", len(repos))
	return repos, nil
}

func (g *GitHubGateway) fetchLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	languages, _, err := g.restClient.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages for %s/%s: %w", owner, repo, err)
	}
	result := make(map[string]int64, len(languages))
	for language, n := range languages {
		result[language] = int64(n)
	}
	return result, nil
}

// GetReadme reads path from owner/repo and decodes its content.
func (g *GitHubGateway) GetReadme(ctx context.Context, owner, repo, path string) (*domain.Document, error) {
	g.logger.Debug("Fetching README...", "repo", owner+"/"+repo, "path", path)
	file, _, _, err := g.restClient.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from %s/%s: %w", path, owner, repo, err)
	}
	if file == nil {
		return nil, fmt.Errorf("failed to get %s from %s/%s: path is a directory", path, owner, repo)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &domain.Document{Content: content, SHA: file.GetSHA()}, nil
}

// UpdateReadme commits doc to path in owner/repo. doc.SHA must be the blob SHA
// the content was based on.
func (g *GitHubGateway) UpdateReadme(ctx context.Context, owner, repo, path string, doc *domain.Document, message string) error {
	g.logger.Debug("Updating README...", "repo", owner+"/"+repo, "path", path)
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: []byte(doc.Content),
		SHA:     github.String(doc.SHA),
	}
	if _, _, err := g.restClient.Repositories.UpdateFile(ctx, owner, repo, path, opts); err != nil {
		return fmt.Errorf("failed to update %s in %s/%s: %w", path, owner, repo, err)
	}
	return nil
}
