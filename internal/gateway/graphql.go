package gateway

import (
	"context"
	"fmt"

	"github.com/naka-gawa/github-language-stats/internal/domain"
	"github.com/shurcooL/githubv4"
)

// repositoriesQuery lists owned repositories with their language sizes in a single round trip per page.
type repositoriesQuery struct {
	User struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []struct {
				Name   string
				IsFork bool
				Owner  struct {
					Login string
				}
				Languages struct {
					Edges []struct {
						Size int64
						Node struct {
							Name string
						}
					}
				} `graphql:"languages(first: 100)"`
			}
		} `graphql:"repositories(first: 100, after: $cursor, ownerAffiliations: OWNER)"`
	} `graphql:"user(login: $login)"`
}

func (g *GitHubGateway) fetchRepositoriesGraphQL(ctx context.Context, user string) ([]domain.Repository, error) {
	g.logger.Debug("Fetching repositories using GraphQL API...", "user", user)
	variables := map[string]interface{}{
		"login":  githubv4.String(user),
		"cursor": (*githubv4.String)(nil),
	}
	var repos []domain.Repository
	for {
		var q repositoriesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for repositories: %w", err)
		}
		for _, node := range q.User.Repositories.Nodes {
			repo := domain.Repository{
				Owner: node.Owner.Login,
				Name:  node.Name,
				Fork:  node.IsFork,
			}
			if len(node.Languages.Edges) > 0 {
				repo.Languages = make(map[string]int64, len(node.Languages.Edges))
				for _, edge := range node.Languages.Edges {
					repo.Languages[edge.Node.Name] += edge.Size
				}
			}
			repos = append(repos, repo)
		}
		if !q.User.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.User.Repositories.PageInfo.EndCursor)
		g.logger.Debug("  Fetching next page of repositories...")
	}
	g.logger.Debug("Completed fetching repositories.", "count", len(repos))
	return repos, nil
}
