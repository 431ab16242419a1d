package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/naka-gawa/github-language-stats/internal/domain"
)

// NoData is rendered when there are no language statistics.
const NoData = "No language statistics available."

// Markdown formats stats as aligned rows of "<name>  <bar>  <pct>%".
// Rows keep the order of stats; the output is deterministic for identical input.
func Markdown(stats []domain.LanguageStat, barWidth int) string {
	if len(stats) == 0 {
		return NoData
	}

	nameWidth := 0
	for _, s := range stats {
		nameWidth = max(nameWidth, utf8.RuneCountInString(s.Language))
	}

	var b strings.Builder
	for _, s := range stats {
		// %-*s pads by rune count, matching nameWidth.
		fmt.Fprintf(&b, "%-*s  %s  %.1f%%\n", nameWidth, s.Language, Bar(s.Percentage, barWidth), s.Percentage)
	}
	return b.String()
}
