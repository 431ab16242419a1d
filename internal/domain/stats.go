// Package domain contains the core data structures and domain logic for the application.
package domain

// Repository is a single repository as seen by the language aggregation.
// Languages maps a language name to the number of bytes GitHub attributes to it.
type Repository struct {
	Owner     string           `json:"owner"`
	Name      string           `json:"name"`
	Fork      bool             `json:"fork"`
	Languages map[string]int64 `json:"languages,omitempty"`
}

// FullName returns the repository name in owner/name form.
func (r Repository) FullName() string {
	if r.Owner == "" {
		return r.Name
	}
	return r.Owner + "/" + r.Name
}

// LanguageTally maps a language name to its accumulated byte count.
type LanguageTally map[string]int64

// Total returns the sum of all byte counts in the tally.
func (t LanguageTally) Total() int64 {
	var total int64
	for _, n := range t {
		total += n
	}
	return total
}

// LanguageStat is one ranked row of the language report.
// It is the core domain entity of this application.
type LanguageStat struct {
	Language   string  `json:"language"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// Summary describes the input that produced a report.
type Summary struct {
	Repositories      int     `json:"repositories"`
	CountedRepos      int     `json:"counted_repositories"`
	SkippedForks      int     `json:"skipped_forks"`
	TotalBytes        int64   `json:"total_bytes"`
	DistinctLanguages int     `json:"distinct_languages"`
	MedianRepoBytes   float64 `json:"median_repository_bytes"`
}

// Report is the result of aggregating a user's repositories.
type Report struct {
	User      string         `json:"user"`
	Languages []LanguageStat `json:"languages"`
	Summary   Summary        `json:"summary"`
}
