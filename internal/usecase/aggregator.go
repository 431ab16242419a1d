// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-language-stats/internal/domain"
	"github.com/naka-gawa/github-language-stats/internal/gateway"
)

// Aggregator is the use case for aggregating a user's language stats.
// It orchestrates fetching repositories and ranking their languages.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Aggregate fetches every repository owned by user and ranks the languages
// of the non-forked ones.
func (a *Aggregator) Aggregate(ctx context.Context, user string, opts RankOptions) (*domain.Report, error) {
	a.logger.Debug("Usecase: starting language aggregation", "user", user)

	repos, err := a.fetcher.FetchRepositories(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories for %s: %w", user, err)
	}
	a.logger.Debug("Usecase: repositories fetched", "count", len(repos))

	tally := Tally(slices.Values(repos))
	summary, err := summarize(repos, tally)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		User:      user,
		Languages: Rank(tally, opts),
		Summary:   summary,
	}
	a.logger.Debug("Usecase: aggregation complete",
		"languages", len(report.Languages),
		"total_bytes", summary.TotalBytes,
		"skipped_forks", summary.SkippedForks)
	return report, nil
}

func summarize(repos []domain.Repository, tally domain.LanguageTally) (domain.Summary, error) {
	summary := domain.Summary{
		Repositories:      len(repos),
		TotalBytes:        tally.Total(),
		DistinctLanguages: len(tally),
	}

	sizes := make(stats.Float64Data, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork {
			summary.SkippedForks++
			continue
		}
		summary.CountedRepos++
		var size int64
		for _, n := range repo.Languages {
			size += n
		}
		sizes = append(sizes, float64(size))
	}

	if len(sizes) == 0 {
		return summary, nil
	}
	median, err := stats.Median(sizes)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to compute median repository size: %w", err)
	}
	summary.MedianRepoBytes = median
	return summary, nil
}
