package usecase

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/github-language-stats/internal/domain"
	"github.com/naka-gawa/github-language-stats/internal/gateway"
	"github.com/naka-gawa/github-language-stats/internal/readme"
)

// ReadmeTarget identifies the file the rendered stats are written into.
type ReadmeTarget struct {
	Owner   string
	Repo    string
	Path    string
	Message string
	Markers readme.Markers
}

// PublishResult describes what Publish did.
type PublishResult struct {
	Document *domain.Document
	Changed  bool
	Written  bool
}

// Publisher splices rendered stats into a README and writes it back.
type Publisher struct {
	store  gateway.ReadmeStore
	logger *log.Logger
	dryRun bool
}

// NewPublisher creates a new Publisher. In dry-run mode nothing is written.
func NewPublisher(store gateway.ReadmeStore, logger *log.Logger, dryRun bool) *Publisher {
	return &Publisher{
		store:  store,
		logger: logger,
		dryRun: dryRun,
	}
}

// Publish replaces the marked section of the target README with content.
// The write is skipped when the document would not change.
func (p *Publisher) Publish(ctx context.Context, target ReadmeTarget, content string) (*PublishResult, error) {
	current, err := p.store.GetReadme(ctx, target.Owner, target.Repo, target.Path)
	if err != nil {
		return nil, err
	}

	updated, err := readme.Splice(current.Content, content, target.Markers)
	if err != nil {
		return nil, fmt.Errorf("failed to splice %s: %w", target.Path, err)
	}

	result := &PublishResult{
		Document: &domain.Document{Content: updated, SHA: current.SHA},
		Changed:  updated != current.Content,
	}
	if !result.Changed {
		p.logger.Info("README already up to date", "repo", target.Owner+"/"+target.Repo)
		return result, nil
	}
	if p.dryRun {
		p.logger.Debug("Dry run: skipping README update", "repo", target.Owner+"/"+target.Repo)
		return result, nil
	}

	if err := p.store.UpdateReadme(ctx, target.Owner, target.Repo, target.Path, result.Document, target.Message); err != nil {
		return nil, fmt.Errorf("failed to update README: %w", err)
	}
	result.Written = true
	return result, nil
}
