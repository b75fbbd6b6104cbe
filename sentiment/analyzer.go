package sentiment

import "strings"

const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Result is the outcome of analyzing one text.
// Score runs from 0.0 (most negative) through 0.5 (neutral) to 1.0 (most positive).
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\n', '\r', '\t', '.', ',', '!', '?', ';', ':', '-', '(', ')', '[', ']', '"', '\'':
		return true
	}
	return false
}

// Analyze scores free text against the Turkish lexicon. It is deterministic and
// total: degenerate input (empty text, no lexicon hits) comes back Neutral/0.5
// instead of failing.
func Analyze(content string) Result {
	if strings.TrimSpace(content) == "" {
		return Result{Label: LabelNeutral, Score: 0.5}
	}

	words := strings.FieldsFunc(strings.ToLower(content), isSeparator)

	positiveCount := 0
	negativeCount := 0
	boosted := false

	for _, word := range words {
		if _, ok := intensifierSet[word]; ok {
			// Double the next sentiment word instead of scoring this one.
			boosted = true
			continue
		}

		if _, ok := positiveSet[word]; ok {
			if boosted {
				positiveCount += 2
			} else {
				positiveCount++
			}
		} else if _, ok := negativeSet[word]; ok {
			if boosted {
				negativeCount += 2
			} else {
				negativeCount++
			}
		} else {
			// Substring fallback catches emoji glued to punctuation and
			// inflected forms carrying a lexicon word.
			if containsAny(word, positiveWords) {
				positiveCount++
			} else if containsAny(word, negativeWords) {
				negativeCount++
			}
		}
		boosted = false
	}

	totalSentimentWords := positiveCount + negativeCount
	if totalSentimentWords == 0 {
		return Result{Label: LabelNeutral, Score: 0.5}
	}

	score := float64(positiveCount) / float64(totalSentimentWords)

	// Long texts with only incidental sentiment words get pulled toward neutral.
	density := float64(totalSentimentWords) / float64(len(words))
	if density < 0.1 {
		score = 0.5 + (score-0.5)*0.5
	}

	if score < 0.0 {
		score = 0.0
	} else if score > 1.0 {
		score = 1.0
	}

	return Result{Label: labelFor(score), Score: score}
}

func labelFor(score float64) string {
	switch {
	case score >= 0.6:
		return LabelPositive
	case score <= 0.4:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func containsAny(word string, lexicon []string) bool {
	for _, entry := range lexicon {
		if strings.Contains(word, entry) {
			return true
		}
	}
	return false
}
