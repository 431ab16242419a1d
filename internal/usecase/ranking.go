package usecase

import (
	"iter"
	"sort"

	"github.com/naka-gawa/github-language-stats/internal/domain"
)

const (
	DefaultMaxLanguages  = 10
	DefaultMinPercentage = 1.0
)

// RankOptions controls filtering and truncation of the ranked result.
type RankOptions struct {
	// MaxLanguages caps the number of entries. Zero or less means no cap.
	MaxLanguages int
	// MinPercentage drops entries whose share is below it.
	MinPercentage float64
}

// DefaultRankOptions returns the options used when nothing is configured.
func DefaultRankOptions() RankOptions {
	return RankOptions{MaxLanguages: DefaultMaxLanguages, MinPercentage: DefaultMinPercentage}
}

// Tally sums language bytes over repos, ignoring forks.
func Tally(repos iter.Seq[domain.Repository]) domain.LanguageTally {
	tally := make(domain.LanguageTally)
	for repo := range repos {
		if repo.Fork {
			continue
		}
		for language, n := range repo.Languages {
			tally[language] += n
		}
	}
	return tally
}

// Rank converts tally into percentages sorted by share, highest first.
// Equal shares are ordered by language name. A zero total yields an empty slice.
func Rank(tally domain.LanguageTally, opts RankOptions) []domain.LanguageStat {
	total := tally.Total()
	if total == 0 {
		return []domain.LanguageStat{}
	}

	ranked := make([]domain.LanguageStat, 0, len(tally))
	for language, n := range tally {
		ranked = append(ranked, domain.LanguageStat{
			Language:   language,
			Bytes:      n,
			Percentage: float64(n) * 100 / float64(total),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Percentage != ranked[j].Percentage {
			return ranked[i].Percentage > ranked[j].Percentage
		}
		return ranked[i].Language < ranked[j].Language
	})

	filtered := ranked[:0]
	for _, s := range ranked {
		if s.Percentage >= opts.MinPercentage {
			filtered = append(filtered, s)
		}
	}
	if opts.MaxLanguages > 0 && len(filtered) > opts.MaxLanguages {
		filtered = filtered[:opts.MaxLanguages]
	}
	return filtered
}

// RankLanguages tallies repos and ranks the result.
func RankLanguages(repos iter.Seq[domain.Repository], opts RankOptions) []domain.LanguageStat {
	return Rank(Tally(repos), opts)
}
