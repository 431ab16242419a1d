package usecase

import (
	"context"

	"github.com/naka-gawa/github-language-stats/internal/domain"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error) {
	args := m.Called(ctx, user)
	// We need to handle the case where the returned slice is nil (e.g., when an error occurs).
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

// mockStore is a mock implementation of the gateway.ReadmeStore interface.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetReadme(ctx context.Context, owner, repo, path string) (*domain.Document, error) {
	args := m.Called(ctx, owner, repo, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *mockStore) UpdateReadme(ctx context.Context, owner, repo, path string, doc *domain.Document, message string) error {
	args := m.Called(ctx, owner, repo, path, doc, message)
	return args.Error(0)
}
