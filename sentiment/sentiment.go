// Package sentiment scores utterances on a small positive/negative
// keyword axis. It is deliberately shallow: whole-word matches only,
// no negation handling, no language model. The score feeds a bounded
// trend window used to adapt the interviewer's tone.
package sentiment

import (
	"regexp"
	"strings"
)

var positiveWords = []string{
	"excited", "happy", "great", "excellent", "good", "love",
	"wonderful", "fantastic", "amazing", "confident",
}

var negativeWords = []string{
	"worried", "nervous", "concerned", "difficult", "hard",
	"confused", "frustrated", "anxious", "stress", "stressed",
}

var wordPattern = regexp.MustCompile(`[a-z']+`)

// Label is the coarse classification of a score or trend.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Score counts positive minus negative keyword hits in text,
// case-insensitive, whole words only. Zero is neutral.
func Score(text string) int {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	hits := make(map[string]int, len(words))
	for _, w := range words {
		hits[w]++
	}
	score := 0
	for _, w := range positiveWords {
		score += hits[w]
	}
	for _, w := range negativeWords {
		score -= hits[w]
	}
	return score
}

// Classify maps a score to its label.
func Classify(score int) Label {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}
