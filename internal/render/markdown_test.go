package render

import (
	"strings"
	"testing"

	"github.com/naka-gawa/github-language-stats/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMarkdown(t *testing.T) {
	t.Run("empty stats render the no data sentinel", func(t *testing.T) {
		assert.Equal(t, NoData, Markdown(nil, DefaultBarWidth))
		assert.Equal(t, NoData, Markdown([]domain.LanguageStat{}, DefaultBarWidth))
	})

	t.Run("rows are aligned and keep ranked order", func(t *testing.T) {
		stats := []domain.LanguageStat{
			{Language: "Python", Bytes: 700, Percentage: 70},
			{Language: "Go", Bytes: 300, Percentage: 30},
		}

		expected := "Python  " + strings.Repeat(FullBlock, 14) + strings.Repeat(EmptyBlock, 6) + "  70.0%\n" +
			"Go      " + strings.Repeat(FullBlock, 6) + strings.Repeat(EmptyBlock, 14) + "  30.0%\n"
		assert.Equal(t, expected, Markdown(stats, 20))
	})

	t.Run("percentages use one decimal", func(t *testing.T) {
		stats := []domain.LanguageStat{{Language: "C", Bytes: 1, Percentage: 12.345}}
		assert.Equal(t, "C  "+strings.Repeat(FullBlock, 1)+strings.Repeat(EmptyBlock, 9)+"  12.3%\n", Markdown(stats, 10))
	})

	t.Run("output is deterministic", func(t *testing.T) {
		stats := []domain.LanguageStat{
			{Language: "TypeScript", Bytes: 5, Percentage: 50},
			{Language: "C#", Bytes: 5, Percentage: 50},
		}
		assert.Equal(t, Markdown(stats, 20), Markdown(stats, 20))
		lines := strings.Split(strings.TrimSuffix(Markdown(stats, 20), "\n"), "\n")
		assert.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[1], "C#          "))
	})
}
