package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/github-language-stats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestAggregator_Aggregate uses a table-driven approach to test the aggregator.
func TestAggregator_Aggregate(t *testing.T) {
	testCases := []struct {
		name           string
		mockRepos      []domain.Repository
		mockErr        error
		opts           RankOptions
		expectedResult *domain.Report
		expectError    bool
	}{
		{
			name: "happy path - ranks languages of owned repositories",
			mockRepos: []domain.Repository{
				{Owner: "octo", Name: "a", Languages: map[string]int64{"Go": 300}},
				{Owner: "octo", Name: "b", Languages: map[string]int64{"Python": 700}},
				{Owner: "octo", Name: "c", Fork: true, Languages: map[string]int64{"Rust": 5000}},
			},
			opts: DefaultRankOptions(),
			expectedResult: &domain.Report{
				User: "octo",
				Languages: []domain.LanguageStat{
					{Language: "Python", Bytes: 700, Percentage: 70},
					{Language: "Go", Bytes: 300, Percentage: 30},
				},
				Summary: domain.Summary{
					Repositories:      3,
					CountedRepos:      2,
					SkippedForks:      1,
					TotalBytes:        1000,
					DistinctLanguages: 2,
					MedianRepoBytes:   500,
				},
			},
		},
		{
			name:        "error case - fetching repositories fails",
			mockErr:     errors.New("github api error"),
			opts:        DefaultRankOptions(),
			expectError: true,
		},
		{
			name:      "empty case - no repositories",
			mockRepos: []domain.Repository{},
			opts:      DefaultRankOptions(),
			expectedResult: &domain.Report{
				User:      "octo",
				Languages: []domain.LanguageStat{}, // Expect an empty slice, not nil
			},
		},
		{
			name: "only forks - nothing is counted",
			mockRepos: []domain.Repository{
				{Owner: "octo", Name: "f", Fork: true, Languages: map[string]int64{"Go": 10}},
			},
			opts: DefaultRankOptions(),
			expectedResult: &domain.Report{
				User:      "octo",
				Languages: []domain.LanguageStat{},
				Summary:   domain.Summary{Repositories: 1, SkippedForks: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			ctx := context.Background()
			logger := log.New(io.Discard)
			fetcher := new(mockFetcher)
			fetcher.On("FetchRepositories", mock.Anything, "octo").Return(tc.mockRepos, tc.mockErr)

			aggregator := NewAggregator(fetcher, logger)

			// --- Act ---
			result, err := aggregator.Aggregate(ctx, "octo", tc.opts)

			// --- Assert ---
			if tc.expectError {
				assert.Error(t, err)
				assert.ErrorContains(t, err, "failed to fetch repositories for octo")
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedResult, result)
			}

			fetcher.AssertExpectations(t)
		})
	}
}
