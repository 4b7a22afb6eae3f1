// Package summary derives reading metadata from case-study prose.
package summary

import "strings"

// WordsPerMinute is the reading speed behind ReadingMinutes.
const WordsPerMinute = 200

// EstimateWords counts whitespace-separated words.
func EstimateWords(text string) int {
	return len(strings.Fields(text))
}

// ReadingMinutes estimates reading time, rounded up, never below one minute.
func ReadingMinutes(text string) int {
	words := EstimateWords(text)
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Excerpt shortens text to at most maxWords words. It keeps whole sentences
// when at least one fits and otherwise cuts mid-sentence with an ellipsis.
func Excerpt(text string, maxWords int) string {
	words := strings.Fields(text)
	if maxWords <= 0 || len(words) == 0 {
		return ""
	}
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}

	var kept []string
	count := 0
	for _, sent := range splitSentences(strings.Join(words, " ")) {
		n := EstimateWords(sent)
		if count+n > maxWords {
			break
		}
		kept = append(kept, sent)
		count += n
	}
	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}
	return strings.Join(words[:maxWords], " ") + "…"
}

// splitSentences does basic sentence splitting.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, strings.TrimSpace(current.String()))
	}

	return sentences
}
