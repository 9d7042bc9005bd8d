package pagemeta

import (
	"math"
	"strings"
)

// CountWords returns the number of whitespace-separated tokens across all
// paragraphs. Paragraph texts are joined with single spaces before splitting
// so that runs of whitespace never produce empty tokens.
func CountWords(paragraphs []string) int {
	if len(paragraphs) == 0 {
		return 0
	}
	return len(strings.Fields(strings.Join(paragraphs, " ")))
}

// WordsPerParagraph returns the average number of words per paragraph,
// rounded to two decimal places. Returns 0 when there are no paragraphs.
func WordsPerParagraph(wordCount, paragraphCount int) float64 {
	if paragraphCount == 0 {
		return 0
	}
	avg := float64(wordCount) / float64(paragraphCount)
	return math.Round(avg*100) / 100
}

// SummarizeLinks counts total, internal, and external links.
func SummarizeLinks(links []LinkEntry) LinkSummary {
	summary := LinkSummary{Total: len(links)}
	for _, link := range links {
		if link.External {
			summary.External++
		}
	}
	summary.Internal = summary.Total - summary.External
	return summary
}

// TotalSections counts headings across all levels.
func TotalSections(headings map[string][]string) int {
	var total int
	for _, texts := range headings {
		total += len(texts)
	}
	return total
}
